package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metas4dx/metas-4dx-api/infrastructure/repository"
	"github.com/metas4dx/metas-4dx-api/infrastructure/storage/csvstore"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
)

// Data de referência dos testes: quarta-feira, semana de 2026-08-31. A
// semana anterior começa em 2026-08-24.
var testNow = time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)

func newTrackingFixture(t *testing.T) (*Service, repository.WeeklyRepository) {
	t.Helper()

	store, err := csvstore.New(t.TempDir())
	require.NoError(t, err)

	goalRepo := repository.NewGoalRepository(store)
	weeklyRepo := repository.NewWeeklyRepository(store)

	require.NoError(t, goalRepo.ReplaceAll(context.Background(), []domain.Goal{
		{ID: "abc123", Team: "Vendas", Owner: "Ana", Statement: "Meta da Ana"},
	}))

	service := NewService(weeklyRepo, goalRepo).WithClock(func() time.Time { return testNow })
	return service, weeklyRepo
}

func TestService_RecordCommitment(t *testing.T) {
	ctx := context.Background()

	t.Run("Planejamento cria o registro da semana normalizada", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		// Quinta-feira informada, registro fica na segunda da semana
		entry, err := service.RecordCommitment(ctx, "Ana", "Meta da Ana", "2026-09-03", "Visitar 3 clientes")
		require.NoError(t, err)

		assert.Equal(t, "2026-08-31", entry.WeekStart)
		assert.Equal(t, "Visitar 3 clientes", entry.Planned)
		assert.Equal(t, "", entry.Done)
		assert.Equal(t, domain.StatusNone, entry.Status)
	})

	t.Run("Upsert repetido não duplica o registro", func(t *testing.T) {
		service, weeklyRepo := newTrackingFixture(t)

		_, err := service.RecordCommitment(ctx, "Ana", "Meta da Ana", "2026-08-31", "Plano inicial")
		require.NoError(t, err)
		_, err = service.RecordCommitment(ctx, "Ana", "Meta da Ana", "2026-09-03", "Plano revisado")
		require.NoError(t, err)

		entries, err := weeklyRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Plano revisado", entries[0].Planned)
	})

	t.Run("Planejado em branco é rejeitado", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		_, err := service.RecordCommitment(ctx, "Ana", "Meta da Ana", "2026-08-31", "   ")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Meta inexistente ou texto divergente é rejeitado", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		_, err := service.RecordCommitment(ctx, "Bruno", "Meta do Bruno", "2026-08-31", "Plano")
		assert.ErrorIs(t, err, ErrGoalNotFound)

		_, err = service.RecordCommitment(ctx, "Ana", "Outra meta", "2026-08-31", "Plano")
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})

	t.Run("Semana anterior ainda aceita escrita", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		entry, err := service.RecordCommitment(ctx, "Ana", "Meta da Ana", "2026-08-24", "Plano atrasado")
		require.NoError(t, err)
		assert.Equal(t, "2026-08-24", entry.WeekStart)
	})

	t.Run("Semanas mais antigas que a semana passada são imutáveis", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		_, err := service.RecordCommitment(ctx, "Ana", "Meta da Ana", "2026-08-17", "Plano antigo")
		assert.ErrorIs(t, err, ErrWeekTooOld)
	})

	t.Run("Data inválida é rejeitada", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		_, err := service.RecordCommitment(ctx, "Ana", "Meta da Ana", "31/08/2026", "Plano")
		assert.ErrorIs(t, err, ErrInvalidWeekDate)
	})
}

func TestService_RecordCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("Feito não apaga o planejado", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		_, err := service.RecordCommitment(ctx, "Ana", "Meta da Ana", "2026-08-31", "Visitar 3 clientes")
		require.NoError(t, err)

		entry, err := service.RecordCompletion(ctx, "Ana", "Meta da Ana", "2026-08-31", "Visitei 2 clientes")
		require.NoError(t, err)

		assert.Equal(t, "Visitar 3 clientes", entry.Planned)
		assert.Equal(t, "Visitei 2 clientes", entry.Done)
	})

	t.Run("Feito pode ser registrado antes do planejado", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		entry, err := service.RecordCompletion(ctx, "Ana", "Meta da Ana", "2026-08-31", "Adiantei as visitas")
		require.NoError(t, err)

		assert.Equal(t, "", entry.Planned)
		assert.Equal(t, "Adiantei as visitas", entry.Done)
	})
}

func TestService_ConfirmStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirmação exige planejamento prévio", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		_, err := service.ConfirmStatus(ctx, "Ana", "Meta da Ana", "2026-08-31", domain.StatusYes)
		assert.ErrorIs(t, err, ErrWeekNotPlanned)
	})

	t.Run("Semana confirmada fecha para qualquer escrita", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		_, err := service.RecordCommitment(ctx, "Ana", "Meta da Ana", "2026-08-24", "Plano da semana")
		require.NoError(t, err)

		entry, err := service.ConfirmStatus(ctx, "Ana", "Meta da Ana", "2026-08-24", domain.StatusNo)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusNo, entry.Status)

		_, err = service.RecordCommitment(ctx, "Ana", "Meta da Ana", "2026-08-24", "Novo plano")
		assert.ErrorIs(t, err, ErrWeekClosed)

		_, err = service.RecordCompletion(ctx, "Ana", "Meta da Ana", "2026-08-24", "Algo feito")
		assert.ErrorIs(t, err, ErrWeekClosed)

		_, err = service.ConfirmStatus(ctx, "Ana", "Meta da Ana", "2026-08-24", domain.StatusYes)
		assert.ErrorIs(t, err, ErrWeekClosed)
	})

	t.Run("Status desconhecido é rejeitado", func(t *testing.T) {
		service, _ := newTrackingFixture(t)

		_, err := service.ConfirmStatus(ctx, "Ana", "Meta da Ana", "2026-08-31", domain.CompletionStatus("TALVEZ"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_WeekEntries(t *testing.T) {
	ctx := context.Background()
	service, weeklyRepo := newTrackingFixture(t)

	require.NoError(t, weeklyRepo.ReplaceAll(ctx, []domain.WeeklyEntry{
		{Owner: "Ana", GoalStatement: "Meta da Ana", WeekStart: "2026-08-31", Planned: "semana atual"},
		{Owner: "Ana", GoalStatement: "Meta da Ana", WeekStart: "2026-08-24", Planned: "semana passada", Status: domain.StatusYes},
	}))

	current, err := service.CurrentWeekEntry(ctx, "Ana", "Meta da Ana")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "semana atual", current.Planned)

	previous, err := service.PreviousWeekEntry(ctx, "Ana", "Meta da Ana")
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, "semana passada", previous.Planned)
	assert.True(t, previous.Closed())

	none, err := service.CurrentWeekEntry(ctx, "Bruno", "Meta do Bruno")
	require.NoError(t, err)
	assert.Nil(t, none)
}
