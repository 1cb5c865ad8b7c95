package importing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// normalizeRows converte as linhas cruas em registros tipados. Linhas
// inválidas são descartadas em silêncio; o chamador decide o que fazer quando
// nenhuma linha sobrevive.
func normalizeRows(table *rawTable, mapping columnMapping) ([]domain.SalesRecord, int) {
	records := make([]domain.SalesRecord, 0, len(table.Rows))
	dropped := 0

	for _, row := range table.Rows {
		record, ok := normalizeRow(row, mapping)
		if !ok {
			dropped++
			continue
		}
		records = append(records, record)
	}

	return records, dropped
}

// normalizeRow aceita uma linha sse a data resolve para um dia de calendário
// válido e o valor de vendas é um número finito. Valores inválidos nunca
// viram zero: a linha inteira é descartada.
func normalizeRow(row RawRow, mapping columnMapping) (domain.SalesRecord, bool) {
	date, err := utils.ParseLocalDate(row[mapping.DateKey])
	if err != nil {
		return domain.SalesRecord{}, false
	}

	// decimal.NewFromString rejeita NaN, infinito e texto não numérico de uma
	// vez; o que sobra é sempre um número finito
	amount, err := decimal.NewFromString(row[mapping.SalesKey])
	if err != nil {
		return domain.SalesRecord{}, false
	}

	product := domain.DefaultProduct
	if mapping.ProductKey != "" && row[mapping.ProductKey] != "" {
		product = row[mapping.ProductKey]
	}

	return domain.SalesRecord{
		Date:    date,
		Sales:   amount.InexactFloat64(),
		Product: product,
	}, true
}
