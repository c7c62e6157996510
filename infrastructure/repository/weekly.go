package repository

import (
	"context"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
)

type WeeklyRepository interface {
	List(ctx context.Context) ([]domain.WeeklyEntry, error)
	ReplaceAll(ctx context.Context, entries []domain.WeeklyEntry) error
	Get(ctx context.Context, owner, goalStatement, weekStart string) (*domain.WeeklyEntry, error)
}

type weeklyRepository struct {
	gateway storage.Gateway
}

func NewWeeklyRepository(gateway storage.Gateway) WeeklyRepository {
	return &weeklyRepository{
		gateway: gateway,
	}
}

func (r *weeklyRepository) List(ctx context.Context) ([]domain.WeeklyEntry, error) {
	rows, err := r.gateway.Read(ctx, storage.Weeks)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.WeeklyEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.WeeklyEntry{
			Owner:         row["responsavel"],
			GoalStatement: row["meta_crucial"],
			WeekStart:     row["semana_ref"],
			Done:          row["feito"],
			Planned:       row["planejado"],
			Status:        domain.CompletionStatus(row["concluido"]),
		})
	}

	return entries, nil
}

func (r *weeklyRepository) ReplaceAll(ctx context.Context, entries []domain.WeeklyEntry) error {
	rows := make([]storage.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, storage.Row{
			"responsavel":  entry.Owner,
			"meta_crucial": entry.GoalStatement,
			"semana_ref":   entry.WeekStart,
			"feito":        entry.Done,
			"planejado":    entry.Planned,
			"concluido":    string(entry.Status),
		})
	}

	return r.gateway.WriteAll(ctx, storage.Weeks, rows)
}

// Get busca o registro pela chave natural (responsável, meta, semana).
// Retorna (nil, nil) quando não há registro para a chave.
func (r *weeklyRepository) Get(ctx context.Context, owner, goalStatement, weekStart string) (*domain.WeeklyEntry, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.Owner == owner && entry.GoalStatement == goalStatement && entry.WeekStart == weekStart {
			return &entry, nil
		}
	}

	return nil, nil
}
