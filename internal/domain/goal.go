package domain

// Goal é a Meta Crucial de um responsável. Cada responsável tem no máximo
// uma meta ativa por vez: salvar uma nova meta substitui a anterior.
//
// O ID é um identificador substituto (nanoid); o texto da meta continua
// sendo gravado nas medidas e semanas como cópia desnormalizada, mantida
// pelo contrato de cascata do GoalService.
type Goal struct {
	ID          string `json:"id"`
	Team        string `json:"equipe"`
	Owner       string `json:"responsavel"`
	Statement   string `json:"meta_crucial"`
	Deadline    string `json:"prazo"`
	Indicator   string `json:"indicador"`
	TargetValue string `json:"meta_final"`
}

// Frequency é a periodicidade de uma Medida de Direção.
type Frequency string

const (
	FrequencyDaily   Frequency = "Diária"
	FrequencyWeekly  Frequency = "Semanal"
	FrequencyMonthly Frequency = "Mensal"
	FrequencyProject Frequency = "Projeto"
)

// ValidFrequency verifica se o valor recebido é uma frequência conhecida.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyProject:
		return true
	}
	return false
}

// Measure é uma Medida de Direção vinculada a uma meta pelo par
// (responsável, texto da meta).
type Measure struct {
	ID            string    `json:"id"`
	Owner         string    `json:"responsavel"`
	GoalStatement string    `json:"meta_crucial"`
	Description   string    `json:"medida_direcao"`
	Frequency     Frequency `json:"frequencia"`
}
