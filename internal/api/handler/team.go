package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/internal/usecases/registering"
	"github.com/metas4dx/metas-4dx-api/pkg/apiErrors"
)

// ListTeams lista todas as equipes cadastradas
func ListTeams(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := service.ListTeams(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar equipes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(teams); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateTeam cadastra uma nova equipe
func CreateTeam(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateTeam")

		var request struct {
			Name string `json:"equipe"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		team, err := service.CreateTeam(r.Context(), request.Name)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, registering.ErrTeamAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrTeamAlreadyExists, "Equipe já cadastrada", nil)
				return
			}
			if errors.Is(err, registering.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da equipe é obrigatório", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao cadastrar equipe", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(team); err != nil {
			logrus.Error(err)
		}
	}
}

// ListTeamUsers lista os usuários de uma equipe
func ListTeamUsers(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da equipe não fornecido", nil)
			return
		}

		users, err := service.UsersOfTeam(r.Context(), name)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar usuários da equipe", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(users); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
