package insighting

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Todas as funções deste arquivo são puras: recebem registros e devolvem
// agregados novos, sem estado escondido. Rodar duas vezes sobre a mesma
// entrada produz exatamente o mesmo resultado.

// SumSales soma o valor de vendas de uma subsequência de registros
func SumSales(records []domain.SalesRecord) float64 {
	total := 0.0
	for _, record := range records {
		total += record.Sales
	}
	return total
}

// FilterByRange mantém os registros com data >= hoje - N dias. A janela "all"
// devolve a entrada inalterada.
func FilterByRange(records []domain.SalesRecord, today time.Time, filters domain.DatasetFilters) []domain.SalesRecord {
	days := filters.RangeDays()
	if days == 0 {
		return records
	}

	cutoff := utils.LocalDay(today).AddDate(0, 0, -days)

	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if !record.Date.Before(cutoff) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// FilterByProduct mantém os registros do produto selecionado. "All" devolve a
// entrada inalterada.
func FilterByProduct(records []domain.SalesRecord, product string) []domain.SalesRecord {
	if product == "" || product == domain.ProductAll {
		return records
	}

	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if record.Product == product {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// MonthlyBuckets agrupa os registros por (ano, mês) do calendário local e
// devolve os buckets em ordem cronológica
func MonthlyBuckets(records []domain.SalesRecord) []domain.MonthlyBucket {
	type monthKey struct {
		year  int
		month time.Month
	}

	totals := make(map[monthKey]float64)
	for _, record := range records {
		key := monthKey{year: record.Date.Year(), month: record.Date.Month()}
		totals[key] += record.Sales
	}

	buckets := make([]domain.MonthlyBucket, 0, len(totals))
	for key, total := range totals {
		buckets = append(buckets, domain.MonthlyBucket{
			Year:   key.year,
			Month:  key.month,
			Period: utils.FormatPeriod(key.year, key.month),
			Total:  total,
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Month < buckets[j].Month
	})

	return buckets
}

// MonthTotal devolve o total do bucket que cobre o instante informado, ou 0
// quando não há registros naquele mês
func MonthTotal(buckets []domain.MonthlyBucket, t time.Time) float64 {
	for _, bucket := range buckets {
		if bucket.Year == t.Year() && bucket.Month == t.Month() {
			return bucket.Total
		}
	}
	return 0
}

// GrowthPercent calcula o crescimento do mês corrente sobre o anterior.
// Quando o mês anterior é zero o crescimento é definido como 0, mesmo com
// vendas no mês corrente: é a simplificação combinada com a mensagem de
// "primeiro mês" da interface, não um bug.
func GrowthPercent(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

// TopProducts soma as vendas por produto sobre o dataset SEM filtros e
// devolve os n maiores. O ranking não muda quando o usuário filtra por
// janela de datas. Empates preservam a ordem da primeira aparição no arquivo
// (ordenação estável).
func TopProducts(records []domain.SalesRecord, n int) []domain.ProductTotal {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, record := range records {
		if _, seen := totals[record.Product]; !seen {
			order = append(order, record.Product)
		}
		totals[record.Product] += record.Sales
	}

	products := make([]domain.ProductTotal, 0, len(order))
	for _, product := range order {
		products = append(products, domain.ProductTotal{
			Product: product,
			Total:   totals[product],
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Total > products[j].Total
	})

	if len(products) > n {
		products = products[:n]
	}
	return products
}

// CompareMonthly compara o mês corrente com a média aritmética de todos os
// meses presentes (meses parciais contam como estão)
func CompareMonthly(buckets []domain.MonthlyBucket, today time.Time) domain.MonthlyComparison {
	comparison := domain.MonthlyComparison{}
	if len(buckets) == 0 {
		return comparison
	}

	sum := 0.0
	for _, bucket := range buckets {
		sum += bucket.Total
	}

	comparison.Average = sum / float64(len(buckets))
	comparison.Current = MonthTotal(buckets, today)
	comparison.Difference = comparison.Current - comparison.Average
	return comparison
}
