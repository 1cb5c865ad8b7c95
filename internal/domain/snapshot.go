package domain

import "time"

// MonthlyBucket agrega as vendas de um mês de calendário (ano/mês locais)
type MonthlyBucket struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Period string     `json:"period"` // formato mm-yyyy, igual ao usado nos relatórios
	Total  float64    `json:"total"`
}

// ProductTotal é o total acumulado de um produto sobre o dataset inteiro
// (sem filtros), usado no ranking de produtos mais vendidos
type ProductTotal struct {
	Product string  `json:"product"`
	Total   float64 `json:"total"`
}

// ForecastPoint é a projeção de vendas para um dia futuro
type ForecastPoint struct {
	Date      time.Time `json:"date"`
	Projected float64   `json:"projected"`
}

// Totals reúne os KPIs principais do dashboard
type Totals struct {
	CurrentMonth  float64 `json:"current_month"`
	PreviousMonth float64 `json:"previous_month"`
	Overall       float64 `json:"overall"`
	GrowthPercent float64 `json:"growth_percent"`
}

// MonthlyComparison compara o mês corrente com a média de todos os meses
// presentes no dataset (meses parciais incluídos)
type MonthlyComparison struct {
	Average    float64 `json:"average"`
	Current    float64 `json:"current"`
	Difference float64 `json:"difference"` // corrente - média
}

// ForecastDisclaimer acompanha toda projeção exportada: a projeção é uma
// média diária achatada, não um modelo de previsão
const ForecastDisclaimer = "Proyección basada en el promedio diario del período filtrado. Es una estimación, no un pronóstico formal."

// DashboardSnapshot é a fotografia completa e já calculada do dashboard.
// Sinks de apresentação (JSON, relatório de texto, planilha) serializam este
// valor sem recalcular nada.
type DashboardSnapshot struct {
	DatasetID   string            `json:"dataset_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Filters     DatasetFilters    `json:"filters"`
	RecordCount int               `json:"record_count"` // registros após os filtros
	Totals      Totals            `json:"totals"`
	Monthly     []MonthlyBucket   `json:"monthly"`
	Comparison  MonthlyComparison `json:"comparison"`
	Insight     Insight           `json:"insight"`
	TopProducts []ProductTotal    `json:"top_products"`
	Forecast    []ForecastPoint   `json:"forecast"`
}
