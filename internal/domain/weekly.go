package domain

// CompletionStatus é a confirmação SIM/NAO de uma semana já planejada.
type CompletionStatus string

const (
	StatusNone CompletionStatus = ""
	StatusYes  CompletionStatus = "SIM"
	StatusNo   CompletionStatus = "NAO"
)

// ValidStatus verifica se o valor recebido é um status de conclusão conhecido.
func ValidStatus(s CompletionStatus) bool {
	return s == StatusYes || s == StatusNo
}

// WeeklyEntry é o registro semanal de uma meta, com chave natural
// (responsável, meta_crucial, semana_ref). WeekStart é sempre a segunda-feira
// da semana, no formato ISO YYYY-MM-DD.
type WeeklyEntry struct {
	Owner         string           `json:"responsavel"`
	GoalStatement string           `json:"meta_crucial"`
	WeekStart     string           `json:"semana_ref"`
	Done          string           `json:"feito"`
	Planned       string           `json:"planejado"`
	Status        CompletionStatus `json:"concluido"`
}

// Closed indica que a semana já recebeu confirmação SIM/NAO e não aceita
// mais alterações.
func (w WeeklyEntry) Closed() bool {
	return w.Status == StatusYes || w.Status == StatusNo
}
