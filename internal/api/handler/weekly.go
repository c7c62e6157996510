package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/internal/domain"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/tracking"
	"github.com/metas4dx/metas-4dx-api/pkg/apiErrors"
)

type weeklyWriteRequest struct {
	Owner         string `json:"responsavel"`
	GoalStatement string `json:"meta_crucial"`
	WeekStart     string `json:"semana_ref"`
	Text          string `json:"texto"`
}

// GetCurrentWeek retorna o registro da semana corrente de uma meta
func GetCurrentWeek(service tracking.Tracker) http.HandlerFunc {
	return weekLookup(func(r *http.Request, owner, goalStatement string) (*domain.WeeklyEntry, error) {
		return service.CurrentWeekEntry(r.Context(), owner, goalStatement)
	})
}

// GetPreviousWeek retorna o registro da semana passada de uma meta
func GetPreviousWeek(service tracking.Tracker) http.HandlerFunc {
	return weekLookup(func(r *http.Request, owner, goalStatement string) (*domain.WeeklyEntry, error) {
		return service.PreviousWeekEntry(r.Context(), owner, goalStatement)
	})
}

func weekLookup(lookup func(r *http.Request, owner, goalStatement string) (*domain.WeeklyEntry, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := r.URL.Query().Get("responsavel")
		goalStatement := r.URL.Query().Get("meta")

		if owner == "" || goalStatement == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Responsável e meta são obrigatórios", nil)
			return
		}

		entry, err := lookup(r, owner, goalStatement)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar registro semanal", nil)
			return
		}

		if entry == nil {
			apiErrors.WriteError(w, apiErrors.ErrWeekNotFound, "Sem registro para a semana", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// RecordCommitment grava o planejamento de uma semana
func RecordCommitment(service tracking.Tracker) http.HandlerFunc {
	return weeklyWrite("INIT - RecordCommitment", func(r *http.Request, request weeklyWriteRequest) (*domain.WeeklyEntry, error) {
		return service.RecordCommitment(r.Context(), request.Owner, request.GoalStatement, request.WeekStart, request.Text)
	})
}

// RecordCompletion grava o que foi feito em uma semana
func RecordCompletion(service tracking.Tracker) http.HandlerFunc {
	return weeklyWrite("INIT - RecordCompletion", func(r *http.Request, request weeklyWriteRequest) (*domain.WeeklyEntry, error) {
		return service.RecordCompletion(r.Context(), request.Owner, request.GoalStatement, request.WeekStart, request.Text)
	})
}

func weeklyWrite(initLog string, write func(r *http.Request, request weeklyWriteRequest) (*domain.WeeklyEntry, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info(initLog)

		var request weeklyWriteRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		entry, err := write(r, request)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
		}
	}
}

// ConfirmWeekStatus fecha uma semana planejada com SIM/NAO
func ConfirmWeekStatus(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ConfirmWeekStatus")

		var request struct {
			Owner         string                  `json:"responsavel"`
			GoalStatement string                  `json:"meta_crucial"`
			WeekStart     string                  `json:"semana_ref"`
			Status        domain.CompletionStatus `json:"concluido"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		entry, err := service.ConfirmStatus(r.Context(), request.Owner, request.GoalStatement, request.WeekStart, request.Status)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
		}
	}
}

func writeTrackingError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, tracking.ErrGoalNotFound):
		apiErrors.WriteError(w, apiErrors.ErrGoalNotFound, "Meta não cadastrada para o responsável", nil)
	case errors.Is(err, tracking.ErrWeekClosed):
		apiErrors.WriteError(w, apiErrors.ErrWeekImmutable, "Semana já confirmada", nil)
	case errors.Is(err, tracking.ErrWeekTooOld):
		apiErrors.WriteError(w, apiErrors.ErrWeekImmutable, "Semanas antigas são imutáveis", nil)
	case errors.Is(err, tracking.ErrWeekNotPlanned):
		apiErrors.WriteError(w, apiErrors.ErrWeekNotFound, "Semana ainda sem planejamento", nil)
	case errors.Is(err, tracking.ErrInvalidWeekDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de semana inválida", nil)
	case errors.Is(err, tracking.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status deve ser SIM ou NAO", nil)
	case errors.Is(err, tracking.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao gravar registro semanal", nil)
	}
}
