package domain

import "time"

// DefaultProduct é o rótulo usado quando o arquivo não possui coluna de produto
// ou quando a célula vem vazia
const DefaultProduct = "General"

// SalesRecord é a unidade canônica de venda após a normalização.
// Date é sempre um dia de calendário local (meia-noite local, sem componente
// de hora) e Sales é sempre um número finito.
type SalesRecord struct {
	Date    time.Time `json:"date"`
	Sales   float64   `json:"sales"`
	Product string    `json:"product"`
}
