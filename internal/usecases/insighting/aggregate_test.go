package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func record(date string, sales float64, product string) domain.SalesRecord {
	parsed, err := time.ParseInLocation(time.DateOnly, date, time.Local)
	if err != nil {
		panic(err)
	}
	return domain.SalesRecord{Date: parsed, Sales: sales, Product: product}
}

func TestFilterByRange(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)
	records := []domain.SalesRecord{
		record("2024-05-09", 100, "General"),
		record("2024-04-10", 200, "General"), // exatamente hoje - 30 dias
		record("2024-04-09", 300, "General"),
		record("2023-01-01", 400, "General"),
	}

	tests := []struct {
		name      string
		rangeName string
		wantTotal float64
	}{
		{
			name:      "Janela de 30 dias inclui a data de corte",
			rangeName: domain.RangeLast30,
			wantTotal: 300,
		},
		{
			name:      "Janela de 90 dias",
			rangeName: domain.RangeLast90,
			wantTotal: 600,
		},
		{
			name:      "Sem janela devolve tudo",
			rangeName: domain.RangeAll,
			wantTotal: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterByRange(records, today, domain.DatasetFilters{Range: tt.rangeName})
			assert.Equal(t, tt.wantTotal, SumSales(filtered))
		})
	}
}

func TestFilterByProduct(t *testing.T) {
	records := []domain.SalesRecord{
		record("2024-05-01", 100, "Camiseta"),
		record("2024-05-02", 200, "Gorra"),
	}

	assert.Len(t, FilterByProduct(records, domain.ProductAll), 2)
	assert.Len(t, FilterByProduct(records, ""), 2)

	filtered := FilterByProduct(records, "Gorra")
	require.Len(t, filtered, 1)
	assert.Equal(t, 200.0, filtered[0].Sales)

	assert.Empty(t, FilterByProduct(records, "Inexistente"))
}

func TestMonthlyBuckets(t *testing.T) {
	records := []domain.SalesRecord{
		record("2024-05-02", 200, "General"),
		record("2024-02-29", 150, "General"), // dia bissexto pertence a fevereiro
		record("2024-05-01", 100, "General"),
		record("2023-12-31", 50, "General"),
	}

	buckets := MonthlyBuckets(records)

	require.Len(t, buckets, 3)
	assert.Equal(t, "12-2023", buckets[0].Period)
	assert.Equal(t, "02-2024", buckets[1].Period)
	assert.Equal(t, "05-2024", buckets[2].Period)
	assert.Equal(t, 150.0, buckets[1].Total)
	assert.Equal(t, 300.0, buckets[2].Total)
}

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{
			name:     "Crescimento sobre o mês anterior",
			current:  300,
			previous: 50,
			want:     500,
		},
		{
			name:     "Queda sobre o mês anterior",
			current:  50,
			previous: 100,
			want:     -50,
		},
		{
			name:     "Mês anterior zero define crescimento zero mesmo com vendas",
			current:  1000,
			previous: 0,
			want:     0,
		},
		{
			name:     "Arredondamento em duas casas",
			current:  100,
			previous: 300,
			want:     -66.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GrowthPercent(tt.current, tt.previous))
		})
	}
}

func TestTopProducts(t *testing.T) {
	records := []domain.SalesRecord{
		record("2024-05-01", 100, "Camiseta"),
		record("2024-05-01", 300, "Gorra"),
		record("2024-05-02", 100, "Jeans"), // empata com Camiseta, apareceu depois
		record("2024-05-02", 200, "Camiseta"),
		record("2024-05-03", 50, "Zapatos"),
		record("2024-05-03", 40, "Chaqueta"),
		record("2024-05-04", 30, "Cinturón"),
	}

	top := TopProducts(records, 5)

	require.Len(t, top, 5)
	assert.Equal(t, "Camiseta", top[0].Product)
	assert.Equal(t, 300.0, top[0].Total)
	assert.Equal(t, "Gorra", top[1].Product)
	assert.Equal(t, "Jeans", top[2].Product)
	assert.Equal(t, "Zapatos", top[3].Product)
	assert.Equal(t, "Chaqueta", top[4].Product)
}

func TestTopProducts_TiePreservesFirstAppearance(t *testing.T) {
	records := []domain.SalesRecord{
		record("2024-05-01", 100, "B"),
		record("2024-05-02", 100, "A"),
	}

	top := TopProducts(records, 5)

	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Product)
	assert.Equal(t, "A", top[1].Product)
}

func TestCompareMonthly(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)

	t.Run("Sem buckets devolve comparação zerada", func(t *testing.T) {
		comparison := CompareMonthly(nil, today)
		assert.Equal(t, domain.MonthlyComparison{}, comparison)
	})

	t.Run("Média inclui meses parciais", func(t *testing.T) {
		buckets := MonthlyBuckets([]domain.SalesRecord{
			record("2024-03-15", 100, "General"),
			record("2024-04-15", 200, "General"),
			record("2024-05-05", 300, "General"),
		})

		comparison := CompareMonthly(buckets, today)
		assert.Equal(t, 200.0, comparison.Average)
		assert.Equal(t, 300.0, comparison.Current)
		assert.Equal(t, 100.0, comparison.Difference)
	})
}

func TestForecast(t *testing.T) {
	today := time.Date(2024, 5, 10, 15, 30, 0, 0, time.Local)

	t.Run("Média diária achatada arredondada", func(t *testing.T) {
		filtered := []domain.SalesRecord{
			record("2024-05-01", 100, "General"),
			record("2024-05-02", 200, "General"),
			record("2024-04-15", 50, "General"),
		}

		points := Forecast(filtered, today)

		require.Len(t, points, ForecastHorizonDays)
		for i, point := range points {
			// 350 / 3 = 116.67, arredondado para 117
			assert.Equal(t, 117.0, point.Projected)
			assert.Equal(t, time.Date(2024, 5, 11+i, 0, 0, 0, 0, time.Local), point.Date)
		}
	})

	t.Run("Conjunto vazio projeta sete zeros", func(t *testing.T) {
		points := Forecast(nil, today)

		require.Len(t, points, ForecastHorizonDays)
		for _, point := range points {
			assert.Equal(t, 0.0, point.Projected)
		}
	})
}
