package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want string
	}{
		{
			name: "Quarta-feira cai na segunda da mesma semana",
			ref:  time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC),
			want: "2026-08-31",
		},
		{
			name: "Segunda-feira é o próprio início da semana",
			ref:  time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			want: "2026-08-31",
		},
		{
			name: "Domingo pertence à semana iniciada na segunda anterior",
			ref:  time.Date(2026, 9, 6, 23, 59, 0, 0, time.UTC),
			want: "2026-08-31",
		},
		{
			name: "Virada de mês",
			ref:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			want: "2026-08-31",
		},
		{
			name: "Virada de ano",
			ref:  time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
			want: "2025-12-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWeek(WeekStart(tt.ref)))
		})
	}
}

func TestPreviousWeekStart(t *testing.T) {
	ref := time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-24", FormatWeek(PreviousWeekStart(ref)))
}

func TestNormalizeWeek(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{
			name:  "Qualquer dia identifica a segunda da semana",
			value: "2026-09-03",
			want:  "2026-08-31",
		},
		{
			name:  "Segunda-feira permanece inalterada",
			value: "2026-08-31",
			want:  "2026-08-31",
		},
		{
			name:    "Formato inválido é rejeitado",
			value:   "31/08/2026",
			wantErr: ErrInvalidWeekDate,
		},
		{
			name:    "Valor vazio é rejeitado",
			value:   "",
			wantErr: ErrInvalidWeekDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeWeek(tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
