package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/internal/domain"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/planning"
	"github.com/metas4dx/metas-4dx-api/pkg/apiErrors"
)

// ListGoals lista as metas cruciais; com ?responsavel= retorna apenas a
// meta ativa do responsável
func ListGoals(service planning.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := r.URL.Query().Get("responsavel")

		w.Header().Set("Content-Type", "application/json")

		if owner != "" {
			goal, err := service.GoalOf(r.Context(), owner)
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar meta", nil)
				return
			}
			if goal == nil {
				apiErrors.WriteError(w, apiErrors.ErrGoalNotFound, "Responsável sem meta cadastrada", nil)
				return
			}

			if err := json.NewEncoder(w).Encode([]domain.Goal{*goal}); err != nil {
				logrus.Error(err)
			}
			return
		}

		goals, err := service.ListGoals(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar metas", nil)
			return
		}

		if err := json.NewEncoder(w).Encode(goals); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetGoal busca uma meta pelo id
func GetGoal(service planning.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da meta não fornecido", nil)
			return
		}

		goal, err := service.GoalByID(r.Context(), id)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, planning.ErrGoalNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrGoalNotFound, "Meta não encontrada", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar meta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(goal); err != nil {
			logrus.Error(err)
		}
	}
}

// UpsertGoal salva a meta do responsável, substituindo a anterior se houver
func UpsertGoal(service planning.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertGoal")

		var input planning.GoalInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		goal, err := service.UpsertGoal(r.Context(), input)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, planning.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Responsável e meta são obrigatórios", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao salvar meta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(goal); err != nil {
			logrus.Error(err)
		}
	}
}

// EditGoal atualiza uma meta existente pelo id
func EditGoal(service planning.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - EditGoal")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da meta não fornecido", nil)
			return
		}

		var update planning.GoalUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		goal, err := service.EditGoal(r.Context(), id, update)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, planning.ErrGoalNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrGoalNotFound, "Meta não encontrada", nil)
				return
			}
			if errors.Is(err, planning.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Texto da meta é obrigatório", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao atualizar meta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(goal); err != nil {
			logrus.Error(err)
		}
	}
}

// DeleteGoal remove a meta e suas medidas e semanas
func DeleteGoal(service planning.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteGoal")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da meta não fornecido", nil)
			return
		}

		if err := service.DeleteGoal(r.Context(), id); err != nil {
			logrus.Error(err)

			if errors.Is(err, planning.ErrGoalNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrGoalNotFound, "Meta não encontrada", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao remover meta", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
