package planning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de planejamento
var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFrequency    = errors.New("frequência inválida")

	// Erros de entidade ausente
	ErrGoalNotFound    = errors.New("meta não encontrada")
	ErrMeasureNotFound = errors.New("medida não encontrada")

	// Erros de geração de identificador
	ErrGenerateID = errors.New("erro ao gerar identificador")
)

// PlanError é um erro com contexto adicional para planejamento
type PlanError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	GoalID  string // ID da meta envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PlanError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewPlanError cria um novo PlanError
func NewPlanError(err error, code string, details string) *PlanError {
	return &PlanError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
