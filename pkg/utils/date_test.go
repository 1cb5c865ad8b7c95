package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	t.Run("Data válida vira meia-noite local", func(t *testing.T) {
		parsed, err := ParseLocalDate("2024-05-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), parsed)
		assert.Equal(t, time.Local, parsed.Location())
	})

	t.Run("Espaços ao redor são tolerados", func(t *testing.T) {
		parsed, err := ParseLocalDate("  2024-05-01  ")
		require.NoError(t, err)
		assert.Equal(t, 2024, parsed.Year())
	})

	t.Run("Dia bissexto é aceito", func(t *testing.T) {
		parsed, err := ParseLocalDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, time.February, parsed.Month())
	})

	t.Run("Entradas inválidas", func(t *testing.T) {
		for _, input := range []string{"", "  ", "01/05/2024", "2024-13-01", "2024-05-32", "2023-02-29", "nao-e-data"} {
			_, err := ParseLocalDate(input)
			assert.Error(t, err, "entrada aceita indevidamente: %q", input)
		}
	})
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "Meio do mês volta para o dia 1 do mês anterior",
			in:   time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local),
			want: time.Date(2024, 4, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "Janeiro volta para dezembro do ano anterior",
			in:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
			want: time.Date(2023, 12, 1, 0, 0, 0, 0, time.Local),
		},
		{
			name: "Março volta para fevereiro, não uma janela de 30 dias",
			in:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local),
			want: time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PreviousMonth(tt.in))
		})
	}
}

func TestLocalDay(t *testing.T) {
	in := time.Date(2024, 5, 10, 23, 59, 59, 0, time.Local)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local), LocalDay(in))
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "05-2024", FormatPeriod(2024, time.May))
	assert.Equal(t, "12-2023", FormatPeriod(2023, time.December))
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	b := time.Date(2024, 5, 31, 23, 0, 0, 0, time.Local)
	c := time.Date(2023, 5, 1, 0, 0, 0, 0, time.Local)

	assert.True(t, SameMonth(a, b))
	assert.False(t, SameMonth(a, c))
}
