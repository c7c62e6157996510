package tracking

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/infrastructure/repository"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
)

// Tracker é o motor de acompanhamento semanal: resolve as semanas atual e
// anterior de um par (responsável, meta) e aplica upserts pela chave
// natural, cada operação dona apenas do campo que lhe cabe.
//
// Máquina de estados por semana: SEM_REGISTRO → PLANEJADA via
// RecordCommitment; PLANEJADA → CONCLUÍDA(SIM|NAO) via ConfirmStatus.
// Semana confirmada é imutável, assim como semanas anteriores à semana
// passada.
type Tracker interface {
	CurrentWeekEntry(ctx context.Context, owner, goalStatement string) (*domain.WeeklyEntry, error)
	PreviousWeekEntry(ctx context.Context, owner, goalStatement string) (*domain.WeeklyEntry, error)
	RecordCommitment(ctx context.Context, owner, goalStatement, weekStart, planned string) (*domain.WeeklyEntry, error)
	RecordCompletion(ctx context.Context, owner, goalStatement, weekStart, done string) (*domain.WeeklyEntry, error)
	ConfirmStatus(ctx context.Context, owner, goalStatement, weekStart string, status domain.CompletionStatus) (*domain.WeeklyEntry, error)
}

type Service struct {
	weeklyRepo repository.WeeklyRepository
	goalRepo   repository.GoalRepository
	now        func() time.Time
}

func NewService(
	weeklyRepo repository.WeeklyRepository,
	goalRepo repository.GoalRepository,
) *Service {
	return &Service{
		weeklyRepo: weeklyRepo,
		goalRepo:   goalRepo,
		now:        time.Now,
	}
}

// WithClock troca a fonte de tempo do serviço. Usado nos testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) CurrentWeekEntry(ctx context.Context, owner, goalStatement string) (*domain.WeeklyEntry, error) {
	return s.weeklyRepo.Get(ctx, owner, goalStatement, FormatWeek(WeekStart(s.now())))
}

func (s *Service) PreviousWeekEntry(ctx context.Context, owner, goalStatement string) (*domain.WeeklyEntry, error) {
	return s.weeklyRepo.Get(ctx, owner, goalStatement, FormatWeek(PreviousWeekStart(s.now())))
}

// RecordCommitment grava o planejamento da semana. O upsert é dono apenas
// do campo planejado: nunca limpa o feito nem o status já registrados.
func (s *Service) RecordCommitment(ctx context.Context, owner, goalStatement, weekStart, planned string) (*domain.WeeklyEntry, error) {
	planned = strings.TrimSpace(planned)
	if planned == "" {
		return nil, ErrMissingRequiredData
	}

	return s.upsert(ctx, owner, goalStatement, weekStart, func(entry *domain.WeeklyEntry) {
		entry.Planned = planned
	})
}

// RecordCompletion grava o que foi feito na semana. Dono apenas do campo
// feito: não mexe no planejado nem no status.
func (s *Service) RecordCompletion(ctx context.Context, owner, goalStatement, weekStart, done string) (*domain.WeeklyEntry, error) {
	done = strings.TrimSpace(done)
	if done == "" {
		return nil, ErrMissingRequiredData
	}

	return s.upsert(ctx, owner, goalStatement, weekStart, func(entry *domain.WeeklyEntry) {
		entry.Done = done
	})
}

// ConfirmStatus fecha a semana com SIM/NAO. Exige planejamento prévio e é
// a transição terminal: depois dela a semana não aceita mais escrita.
func (s *Service) ConfirmStatus(ctx context.Context, owner, goalStatement, weekStart string, status domain.CompletionStatus) (*domain.WeeklyEntry, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	week, err := NormalizeWeek(weekStart)
	if err != nil {
		return nil, err
	}

	existing, err := s.weeklyRepo.Get(ctx, owner, goalStatement, week)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.Planned == "" {
		return nil, ErrWeekNotPlanned
	}

	return s.upsert(ctx, owner, goalStatement, week, func(entry *domain.WeeklyEntry) {
		entry.Status = status
	})
}

// upsert aplica mutate sobre o registro da chave natural, substituindo a
// linha anterior se houver. Exige que a meta exista, rejeita escrita em
// semana fechada e em semanas mais antigas que a semana passada.
func (s *Service) upsert(ctx context.Context, owner, goalStatement, weekStart string, mutate func(*domain.WeeklyEntry)) (*domain.WeeklyEntry, error) {
	if owner == "" || goalStatement == "" {
		return nil, ErrMissingRequiredData
	}

	week, err := NormalizeWeek(weekStart)
	if err != nil {
		return nil, err
	}

	if week < FormatWeek(PreviousWeekStart(s.now())) {
		return nil, ErrWeekTooOld
	}

	goal, err := s.goalRepo.GetByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if goal == nil || goal.Statement != goalStatement {
		return nil, ErrGoalNotFound
	}

	entries, err := s.weeklyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	entry := domain.WeeklyEntry{
		Owner:         owner,
		GoalStatement: goalStatement,
		WeekStart:     week,
	}

	kept := entries[:0]
	for _, existing := range entries {
		if existing.Owner == owner && existing.GoalStatement == goalStatement && existing.WeekStart == week {
			if existing.Closed() {
				return nil, ErrWeekClosed
			}
			entry = existing
			continue
		}
		kept = append(kept, existing)
	}

	mutate(&entry)
	kept = append(kept, entry)

	if err := s.weeklyRepo.ReplaceAll(ctx, kept); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"responsavel": owner,
		"semana_ref":  week,
	}).Debug("Registro semanal atualizado")

	return &entry, nil
}
