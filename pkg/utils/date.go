package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseLocalDate interpreta uma string de data como um dia de calendário
// LOCAL (meia-noite local). Nunca interpretamos a string como UTC: um
// timestamp UTC pode cruzar a fronteira do dia no fuso local e classificar o
// registro no mês errado.
func ParseLocalDate(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	parsed, err := time.ParseInLocation(time.DateOnly, trimmed, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", trimmed, err)
	}

	return parsed, nil
}

// LocalDay normaliza um instante qualquer para a meia-noite local do mesmo dia
func LocalDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

// StartOfMonth retorna o primeiro dia do mês do instante informado
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// PreviousMonth retorna o primeiro dia do mês de calendário anterior.
// É sempre o mês literal anterior (dia 1 ao último dia), nunca uma janela
// móvel de 30 dias.
func PreviousMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, -1, 0)
}

// SameMonth informa se dois instantes caem no mesmo mês de calendário local
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// FormatPeriod formata um par ano/mês no formato mm-yyyy usado nos relatórios
func FormatPeriod(year int, month time.Month) string {
	return fmt.Sprintf("%02d-%04d", int(month), year)
}
