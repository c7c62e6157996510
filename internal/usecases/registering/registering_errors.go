package registering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de cadastro
var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	// Erros de chave duplicada
	ErrTeamAlreadyExists = errors.New("equipe já cadastrada")
	ErrUserAlreadyExists = errors.New("email já cadastrado")

	// Erros de armazenamento
	ErrStorageOperation = errors.New("erro ao acessar o armazenamento")
)

// RegisterError é um erro com contexto adicional para cadastro
type RegisterError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RegisterError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RegisterError) Unwrap() error {
	return e.Err
}

// NewRegisterError cria um novo RegisterError
func NewRegisterError(err error, code string, details string) *RegisterError {
	return &RegisterError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
