package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/internal/domain"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/registering"
	"github.com/metas4dx/metas-4dx-api/pkg/apiErrors"
)

// ListUsers lista todos os usuários cadastrados
func ListUsers(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar usuários", nil)
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

// CreateUser cadastra um novo usuário
func CreateUser(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var user domain.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateUser(r.Context(), user)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, registering.ErrUserAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Email já cadastrado", nil)
				return
			}
			if errors.Is(err, registering.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e email são obrigatórios", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao cadastrar usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}
