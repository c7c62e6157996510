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

// ListMeasures lista as medidas de direção de uma meta
func ListMeasures(service planning.MeasureManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := r.URL.Query().Get("responsavel")
		goalStatement := r.URL.Query().Get("meta")

		if owner == "" || goalStatement == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Responsável e meta são obrigatórios", nil)
			return
		}

		measures, err := service.MeasuresOf(r.Context(), owner, goalStatement)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar medidas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(measures); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// AddMeasures cadastra uma medida por linha do texto recebido
func AddMeasures(service planning.MeasureManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddMeasures")

		var request struct {
			Owner         string           `json:"responsavel"`
			GoalStatement string           `json:"meta_crucial"`
			Lines         string           `json:"medidas"`
			Frequency     domain.Frequency `json:"frequencia"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.AddMeasures(r.Context(), request.Owner, request.GoalStatement, request.Lines, request.Frequency)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, planning.ErrGoalNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrGoalNotFound, "Cadastre uma meta antes", nil)
				return
			}
			if errors.Is(err, planning.ErrInvalidFrequency) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Frequência inválida", nil)
				return
			}
			if errors.Is(err, planning.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ao menos uma medida", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao cadastrar medidas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}

// EditMeasure atualiza descrição e frequência de uma medida
func EditMeasure(service planning.MeasureManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - EditMeasure")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da medida não fornecido", nil)
			return
		}

		var request struct {
			Description string           `json:"medida_direcao"`
			Frequency   domain.Frequency `json:"frequencia"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		measure, err := service.EditMeasure(r.Context(), id, request.Description, request.Frequency)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, planning.ErrMeasureNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrMeasureNotFound, "Medida não encontrada", nil)
				return
			}
			if errors.Is(err, planning.ErrInvalidFrequency) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Frequência inválida", nil)
				return
			}
			if errors.Is(err, planning.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Descrição é obrigatória", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao atualizar medida", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(measure); err != nil {
			logrus.Error(err)
		}
	}
}

// DeleteMeasure remove uma medida
func DeleteMeasure(service planning.MeasureManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteMeasure")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da medida não fornecido", nil)
			return
		}

		if err := service.DeleteMeasure(r.Context(), id); err != nil {
			logrus.Error(err)

			if errors.Is(err, planning.ErrMeasureNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrMeasureNotFound, "Medida não encontrada", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao remover medida", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
