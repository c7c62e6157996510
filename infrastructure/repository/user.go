package repository

import (
	"context"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	ReplaceAll(ctx context.Context, users []domain.User) error
	ListByTeam(ctx context.Context, team string) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userRepository struct {
	gateway storage.Gateway
}

func NewUserRepository(gateway storage.Gateway) UserRepository {
	return &userRepository{
		gateway: gateway,
	}
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.gateway.Read(ctx, storage.Users)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, decodeUser(row))
	}

	return users, nil
}

func (r *userRepository) ReplaceAll(ctx context.Context, users []domain.User) error {
	rows := make([]storage.Row, 0, len(users))
	for _, user := range users {
		rows = append(rows, storage.Row{
			"nome":   user.Name,
			"email":  user.Email,
			"equipe": user.Team,
		})
	}

	return r.gateway.WriteAll(ctx, storage.Users, rows)
}

func (r *userRepository) ListByTeam(ctx context.Context, team string) ([]domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []domain.User
	for _, user := range users {
		if user.Team == team {
			filtered = append(filtered, user)
		}
	}

	return filtered, nil
}

// GetByEmail retorna (nil, nil) quando o email não está cadastrado.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, nil
}

func decodeUser(row storage.Row) domain.User {
	return domain.User{
		Name:  row["nome"],
		Email: row["email"],
		Team:  row["equipe"],
	}
}
