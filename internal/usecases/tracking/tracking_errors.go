package tracking

import "errors"

// Erros específicos para o contexto de acompanhamento semanal
var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidWeekDate     = errors.New("data de semana inválida")
	ErrInvalidStatus       = errors.New("status de conclusão inválido")

	// Erros de entidade ausente
	ErrGoalNotFound = errors.New("meta não encontrada")

	// Erros da máquina de estados semanal
	ErrWeekClosed     = errors.New("semana já confirmada e fechada para alterações")
	ErrWeekNotPlanned = errors.New("semana ainda sem planejamento registrado")
	ErrWeekTooOld     = errors.New("semanas anteriores à semana passada são imutáveis")
)
