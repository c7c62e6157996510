package registering

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/infrastructure/repository"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
	"github.com/metas4dx/metas-4dx-api/pkg/apiErrors"
)

// Registrar cadastra equipes e usuários, garantindo as chaves naturais
// (nome de equipe e email únicos).
type Registrar interface {
	CreateTeam(ctx context.Context, name string) (*domain.Team, error)
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UsersOfTeam(ctx context.Context, team string) ([]domain.User, error)
}

type Service struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

func NewService(
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
) Registrar {
	return &Service{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// CreateTeam cadastra uma nova equipe. Nome em branco não grava nada e nome
// duplicado aborta sem escrita parcial.
func (s *Service) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingRequiredData
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, NewRegisterError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao listar equipes")
	}

	for _, team := range teams {
		if team.Name == name {
			return nil, ErrTeamAlreadyExists
		}
	}

	team := domain.Team{Name: name}
	teams = append(teams, team)

	if err := s.teamRepo.ReplaceAll(ctx, teams); err != nil {
		return nil, NewRegisterError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao gravar equipes")
	}

	logrus.WithField("equipe", name).Info("Equipe cadastrada")
	return &team, nil
}

// CreateUser cadastra um usuário vinculado a uma equipe. O email é a chave
// natural: duplicado aborta a operação.
func (s *Service) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)

	if user.Name == "" || user.Email == "" {
		return nil, ErrMissingRequiredData
	}

	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, NewRegisterError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao consultar usuários")
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, NewRegisterError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao listar usuários")
	}

	users = append(users, user)

	if err := s.userRepo.ReplaceAll(ctx, users); err != nil {
		return nil, NewRegisterError(ErrStorageOperation, apiErrors.ErrStorageOperation, "Falha ao gravar usuários")
	}

	logrus.WithFields(logrus.Fields{
		"email":  user.Email,
		"equipe": user.Team,
	}).Info("Usuário cadastrado")

	return &user, nil
}

func (s *Service) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *Service) UsersOfTeam(ctx context.Context, team string) ([]domain.User, error) {
	return s.userRepo.ListByTeam(ctx, team)
}
