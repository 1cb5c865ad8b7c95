package domain

import "fmt"

// Valores aceitos para o filtro de janela de datas
const (
	RangeLast30  = "30d"
	RangeLast90  = "90d"
	RangeLast180 = "180d"
	RangeAll     = "all"
)

// ProductAll desativa o filtro de produto
const ProductAll = "All"

// rangeDays mapeia cada janela para a quantidade de dias que ela cobre
var rangeDays = map[string]int{
	RangeLast30:  30,
	RangeLast90:  90,
	RangeLast180: 180,
	RangeAll:     0,
}

// DatasetFilters é a seleção de filtros aplicada às visões do dashboard:
// um rótulo de produto (ou "All") e uma janela de datas
type DatasetFilters struct {
	Product string `json:"product"`
	Range   string `json:"range"`
}

// DefaultFilters retorna a seleção sem nenhum filtro ativo
func DefaultFilters() DatasetFilters {
	return DatasetFilters{Product: ProductAll, Range: RangeAll}
}

// Normalize preenche os campos vazios com os valores neutros
func (f DatasetFilters) Normalize() DatasetFilters {
	if f.Product == "" {
		f.Product = ProductAll
	}
	if f.Range == "" {
		f.Range = RangeAll
	}
	return f
}

// Validate garante que a janela de datas é uma das conhecidas
func (f DatasetFilters) Validate() error {
	if _, ok := rangeDays[f.Range]; !ok {
		return fmt.Errorf("janela de datas inválida: %q (use 30d, 90d, 180d ou all)", f.Range)
	}
	return nil
}

// RangeDays retorna a quantidade de dias coberta pela janela (0 = sem limite)
func (f DatasetFilters) RangeDays() int {
	return rangeDays[f.Range]
}
