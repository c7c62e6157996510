package repository

import (
	"context"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
)

type TeamRepository interface {
	List(ctx context.Context) ([]domain.Team, error)
	ReplaceAll(ctx context.Context, teams []domain.Team) error
}

type teamRepository struct {
	gateway storage.Gateway
}

func NewTeamRepository(gateway storage.Gateway) TeamRepository {
	return &teamRepository{
		gateway: gateway,
	}
}

func (r *teamRepository) List(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.gateway.Read(ctx, storage.Teams)
	if err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, domain.Team{Name: row["equipe"]})
	}

	return teams, nil
}

func (r *teamRepository) ReplaceAll(ctx context.Context, teams []domain.Team) error {
	rows := make([]storage.Row, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, storage.Row{"equipe": team.Name})
	}

	return r.gateway.WriteAll(ctx, storage.Teams, rows)
}
