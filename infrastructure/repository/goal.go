package repository

import (
	"context"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
)

type GoalRepository interface {
	List(ctx context.Context) ([]domain.Goal, error)
	ReplaceAll(ctx context.Context, goals []domain.Goal) error
	GetByOwner(ctx context.Context, owner string) (*domain.Goal, error)
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
}

type goalRepository struct {
	gateway storage.Gateway
}

func NewGoalRepository(gateway storage.Gateway) GoalRepository {
	return &goalRepository{
		gateway: gateway,
	}
}

func (r *goalRepository) List(ctx context.Context) ([]domain.Goal, error) {
	rows, err := r.gateway.Read(ctx, storage.Goals)
	if err != nil {
		return nil, err
	}

	goals := make([]domain.Goal, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, decodeGoal(row))
	}

	return goals, nil
}

func (r *goalRepository) ReplaceAll(ctx context.Context, goals []domain.Goal) error {
	rows := make([]storage.Row, 0, len(goals))
	for _, goal := range goals {
		rows = append(rows, storage.Row{
			"id":           goal.ID,
			"equipe":       goal.Team,
			"responsavel":  goal.Owner,
			"meta_crucial": goal.Statement,
			"prazo":        goal.Deadline,
			"indicador":    goal.Indicator,
			"meta_final":   goal.TargetValue,
		})
	}

	return r.gateway.WriteAll(ctx, storage.Goals, rows)
}

// GetByOwner retorna a meta ativa do responsável, ou (nil, nil) quando ele
// ainda não tem meta cadastrada.
func (r *goalRepository) GetByOwner(ctx context.Context, owner string) (*domain.Goal, error) {
	goals, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, goal := range goals {
		if goal.Owner == owner {
			return &goal, nil
		}
	}

	return nil, nil
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	goals, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, goal := range goals {
		if goal.ID == id {
			return &goal, nil
		}
	}

	return nil, nil
}

func decodeGoal(row storage.Row) domain.Goal {
	return domain.Goal{
		ID:          row["id"],
		Team:        row["equipe"],
		Owner:       row["responsavel"],
		Statement:   row["meta_crucial"],
		Deadline:    row["prazo"],
		Indicator:   row["indicador"],
		TargetValue: row["meta_final"],
	}
}
