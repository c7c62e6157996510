package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de entidade ausente (NotFound)
	ErrTeamNotFound    = "NF_001" // Equipe não encontrada
	ErrUserNotFound    = "NF_002" // Usuário não encontrado
	ErrGoalNotFound    = "NF_003" // Meta não encontrada
	ErrMeasureNotFound = "NF_004" // Medida não encontrada
	ErrWeekNotFound    = "NF_005" // Registro semanal não encontrado

	// Erros de chave duplicada (DuplicateKey)
	ErrTeamAlreadyExists = "DUP_001" // Equipe já cadastrada
	ErrUserAlreadyExists = "DUP_002" // Email já cadastrado

	// Erros de validação (ValidationError)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrWeekImmutable       = "VAL_004" // Semana fechada ou antiga demais para alteração

	// Erros do servidor (StorageUnavailable e afins)
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrStorageOperation = "SRV_002" // Erro ao acessar o armazenamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrTeamNotFound:        http.StatusNotFound,
	ErrUserNotFound:        http.StatusNotFound,
	ErrGoalNotFound:        http.StatusNotFound,
	ErrMeasureNotFound:     http.StatusNotFound,
	ErrWeekNotFound:        http.StatusNotFound,
	ErrTeamAlreadyExists:   http.StatusBadRequest,
	ErrUserAlreadyExists:   http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrWeekImmutable:       http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrStorageOperation:    http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
