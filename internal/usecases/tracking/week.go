package tracking

import "time"

const weekDateLayout = "2006-01-02"

// WeekStart retorna a segunda-feira da semana ISO que contém a data de
// referência. Domingo pertence à semana iniciada na segunda anterior.
func WeekStart(ref time.Time) time.Time {
	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	monday := ref.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, ref.Location())
}

// PreviousWeekStart é a segunda-feira da semana anterior à da referência.
func PreviousWeekStart(ref time.Time) time.Time {
	return WeekStart(ref).AddDate(0, 0, -7)
}

// FormatWeek serializa a segunda-feira no formato ISO usado em semana_ref.
func FormatWeek(weekStart time.Time) string {
	return weekStart.Format(weekDateLayout)
}

// NormalizeWeek interpreta uma data ISO e a reduz à segunda-feira da sua
// semana, para que qualquer dia informado identifique a mesma semana.
func NormalizeWeek(value string) (string, error) {
	date, err := time.Parse(weekDateLayout, value)
	if err != nil {
		return "", ErrInvalidWeekDate
	}

	return FormatWeek(WeekStart(date)), nil
}
