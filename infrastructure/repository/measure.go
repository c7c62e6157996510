package repository

import (
	"context"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
)

type MeasureRepository interface {
	List(ctx context.Context) ([]domain.Measure, error)
	ReplaceAll(ctx context.Context, measures []domain.Measure) error
	ListByGoal(ctx context.Context, owner, goalStatement string) ([]domain.Measure, error)
}

type measureRepository struct {
	gateway storage.Gateway
}

func NewMeasureRepository(gateway storage.Gateway) MeasureRepository {
	return &measureRepository{
		gateway: gateway,
	}
}

func (r *measureRepository) List(ctx context.Context) ([]domain.Measure, error) {
	rows, err := r.gateway.Read(ctx, storage.Measures)
	if err != nil {
		return nil, err
	}

	measures := make([]domain.Measure, 0, len(rows))
	for _, row := range rows {
		measures = append(measures, domain.Measure{
			ID:            row["id"],
			Owner:         row["responsavel"],
			GoalStatement: row["meta_crucial"],
			Description:   row["medida_direcao"],
			Frequency:     domain.Frequency(row["frequencia"]),
		})
	}

	return measures, nil
}

func (r *measureRepository) ReplaceAll(ctx context.Context, measures []domain.Measure) error {
	rows := make([]storage.Row, 0, len(measures))
	for _, measure := range measures {
		rows = append(rows, storage.Row{
			"id":             measure.ID,
			"responsavel":    measure.Owner,
			"meta_crucial":   measure.GoalStatement,
			"medida_direcao": measure.Description,
			"frequencia":     string(measure.Frequency),
		})
	}

	return r.gateway.WriteAll(ctx, storage.Measures, rows)
}

func (r *measureRepository) ListByGoal(ctx context.Context, owner, goalStatement string) ([]domain.Measure, error) {
	measures, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []domain.Measure
	for _, measure := range measures {
		if measure.Owner == owner && measure.GoalStatement == goalStatement {
			filtered = append(filtered, measure)
		}
	}

	return filtered, nil
}
