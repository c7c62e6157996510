package planning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metas4dx/metas-4dx-api/infrastructure/repository"
	"github.com/metas4dx/metas-4dx-api/infrastructure/storage/csvstore"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
)

type planningFixture struct {
	goals    GoalManager
	measures MeasureManager

	goalRepo    repository.GoalRepository
	measureRepo repository.MeasureRepository
	weeklyRepo  repository.WeeklyRepository
}

func newPlanningFixture(t *testing.T) *planningFixture {
	t.Helper()

	store, err := csvstore.New(t.TempDir())
	require.NoError(t, err)

	goalRepo := repository.NewGoalRepository(store)
	measureRepo := repository.NewMeasureRepository(store)
	weeklyRepo := repository.NewWeeklyRepository(store)

	return &planningFixture{
		goals:       NewGoalService(goalRepo, measureRepo, weeklyRepo),
		measures:    NewMeasureService(measureRepo, goalRepo),
		goalRepo:    goalRepo,
		measureRepo: measureRepo,
		weeklyRepo:  weeklyRepo,
	}
}

func TestGoalService_UpsertGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("Meta nova recebe um id gerado", func(t *testing.T) {
		f := newPlanningFixture(t)

		goal, err := f.goals.UpsertGoal(ctx, GoalInput{
			Team:        "Vendas",
			Owner:       "Ana",
			Statement:   "Aumentar vendas em 20%",
			Deadline:    "2026-12-31",
			Indicator:   "faturamento",
			TargetValue: "120000",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, goal.ID)
		assert.Equal(t, "Ana", goal.Owner)
	})

	t.Run("Responsável mantém no máximo uma meta após vários upserts", func(t *testing.T) {
		f := newPlanningFixture(t)

		statements := []string{"Meta A", "Meta B", "Meta C"}
		var firstID string
		for i, statement := range statements {
			goal, err := f.goals.UpsertGoal(ctx, GoalInput{
				Team:      "Vendas",
				Owner:     "Ana",
				Statement: statement,
			})
			require.NoError(t, err)
			if i == 0 {
				firstID = goal.ID
			}
			// A substituição preserva o id da meta anterior
			assert.Equal(t, firstID, goal.ID)
		}

		goals, err := f.goals.ListGoals(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, "Meta C", goals[0].Statement)
	})

	t.Run("Metas de responsáveis distintos convivem", func(t *testing.T) {
		f := newPlanningFixture(t)

		_, err := f.goals.UpsertGoal(ctx, GoalInput{Team: "Vendas", Owner: "Ana", Statement: "Meta da Ana"})
		require.NoError(t, err)
		_, err = f.goals.UpsertGoal(ctx, GoalInput{Team: "Vendas", Owner: "Bruno", Statement: "Meta do Bruno"})
		require.NoError(t, err)

		goals, err := f.goals.ListGoals(ctx)
		require.NoError(t, err)
		assert.Len(t, goals, 2)
	})

	t.Run("Responsável ou meta em branco são rejeitados", func(t *testing.T) {
		f := newPlanningFixture(t)

		_, err := f.goals.UpsertGoal(ctx, GoalInput{Owner: "  ", Statement: "Meta"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		_, err = f.goals.UpsertGoal(ctx, GoalInput{Owner: "Ana", Statement: ""})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestGoalService_GoalByID(t *testing.T) {
	ctx := context.Background()
	f := newPlanningFixture(t)

	goal, err := f.goals.UpsertGoal(ctx, GoalInput{Team: "Vendas", Owner: "Ana", Statement: "Meta da Ana"})
	require.NoError(t, err)

	found, err := f.goals.GoalByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Owner)

	_, err = f.goals.GoalByID(ctx, "zzz999")
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalService_RenomearMetaCascateia(t *testing.T) {
	ctx := context.Background()
	f := newPlanningFixture(t)

	_, err := f.goals.UpsertGoal(ctx, GoalInput{Team: "Vendas", Owner: "Ana", Statement: "Meta antiga"})
	require.NoError(t, err)

	_, err = f.measures.AddMeasures(ctx, "Ana", "Meta antiga", "Ligar para 10 clientes", domain.FrequencyWeekly)
	require.NoError(t, err)

	require.NoError(t, f.weeklyRepo.ReplaceAll(ctx, []domain.WeeklyEntry{
		{Owner: "Ana", GoalStatement: "Meta antiga", WeekStart: "2026-08-24", Planned: "visitas"},
	}))

	_, err = f.goals.UpsertGoal(ctx, GoalInput{Team: "Vendas", Owner: "Ana", Statement: "Meta nova"})
	require.NoError(t, err)

	measures, err := f.measureRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, measures, 1)
	assert.Equal(t, "Meta nova", measures[0].GoalStatement)

	entries, err := f.weeklyRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Meta nova", entries[0].GoalStatement)
	assert.Equal(t, "visitas", entries[0].Planned)
}

func TestGoalService_EditGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("Edição por id atualiza e cascateia a renomeação", func(t *testing.T) {
		f := newPlanningFixture(t)

		goal, err := f.goals.UpsertGoal(ctx, GoalInput{Team: "Vendas", Owner: "Ana", Statement: "Meta antiga"})
		require.NoError(t, err)

		_, err = f.measures.AddMeasures(ctx, "Ana", "Meta antiga", "Medida", domain.FrequencyDaily)
		require.NoError(t, err)

		updated, err := f.goals.EditGoal(ctx, goal.ID, GoalUpdate{
			Statement: "Meta nova",
			Deadline:  "2026-06-30",
		})
		require.NoError(t, err)
		assert.Equal(t, "Meta nova", updated.Statement)
		assert.Equal(t, "2026-06-30", updated.Deadline)

		measures, err := f.measureRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, measures, 1)
		assert.Equal(t, "Meta nova", measures[0].GoalStatement)
	})

	t.Run("Id desconhecido retorna meta não encontrada", func(t *testing.T) {
		f := newPlanningFixture(t)

		_, err := f.goals.EditGoal(ctx, "zzz999", GoalUpdate{Statement: "Qualquer"})
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})
}

func TestGoalService_DeleteGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("Exclusão remove medidas e semanas vinculadas", func(t *testing.T) {
		f := newPlanningFixture(t)

		goal, err := f.goals.UpsertGoal(ctx, GoalInput{Team: "Vendas", Owner: "Ana", Statement: "Meta da Ana"})
		require.NoError(t, err)
		_, err = f.goals.UpsertGoal(ctx, GoalInput{Team: "Vendas", Owner: "Bruno", Statement: "Meta do Bruno"})
		require.NoError(t, err)

		_, err = f.measures.AddMeasures(ctx, "Ana", "Meta da Ana", "Medida 1\nMedida 2", domain.FrequencyWeekly)
		require.NoError(t, err)
		_, err = f.measures.AddMeasures(ctx, "Bruno", "Meta do Bruno", "Medida do Bruno", domain.FrequencyWeekly)
		require.NoError(t, err)

		require.NoError(t, f.weeklyRepo.ReplaceAll(ctx, []domain.WeeklyEntry{
			{Owner: "Ana", GoalStatement: "Meta da Ana", WeekStart: "2026-08-24", Planned: "x"},
			{Owner: "Bruno", GoalStatement: "Meta do Bruno", WeekStart: "2026-08-24", Planned: "y"},
		}))

		require.NoError(t, f.goals.DeleteGoal(ctx, goal.ID))

		goals, err := f.goals.ListGoals(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, "Bruno", goals[0].Owner)

		measures, err := f.measureRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, measures, 1)
		assert.Equal(t, "Bruno", measures[0].Owner)

		entries, err := f.weeklyRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Bruno", entries[0].Owner)
	})

	t.Run("Id desconhecido retorna meta não encontrada", func(t *testing.T) {
		f := newPlanningFixture(t)

		err := f.goals.DeleteGoal(ctx, "zzz999")
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})
}
