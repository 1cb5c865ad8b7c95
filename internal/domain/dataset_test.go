package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDataset_Products(t *testing.T) {
	dataset := &Dataset{
		Records: []SalesRecord{
			{Product: "Gorra"},
			{Product: "Camiseta"},
			{Product: "Gorra"},
			{Product: "Jeans"},
		},
	}

	// Ordem da primeira aparição, sem duplicatas
	assert.Equal(t, []string{"Gorra", "Camiseta", "Jeans"}, dataset.Products())
}

func TestDataset_ExpiredAt(t *testing.T) {
	uploaded := time.Date(2024, 5, 10, 10, 0, 0, 0, time.Local)
	dataset := &Dataset{UploadedAt: uploaded}

	assert.False(t, dataset.ExpiredAt(uploaded.Add(1*time.Hour), 2*time.Hour))
	assert.False(t, dataset.ExpiredAt(uploaded.Add(2*time.Hour), 2*time.Hour))
	assert.True(t, dataset.ExpiredAt(uploaded.Add(2*time.Hour+time.Second), 2*time.Hour))

	// TTL não positivo desativa a expiração
	assert.False(t, dataset.ExpiredAt(uploaded.Add(1000*time.Hour), 0))
}

func TestDatasetFilters(t *testing.T) {
	t.Run("Normalize preenche os valores neutros", func(t *testing.T) {
		filters := DatasetFilters{}.Normalize()
		assert.Equal(t, DefaultFilters(), filters)
	})

	t.Run("Validate aceita as janelas conhecidas", func(t *testing.T) {
		for _, rangeName := range []string{RangeLast30, RangeLast90, RangeLast180, RangeAll} {
			assert.NoError(t, DatasetFilters{Product: ProductAll, Range: rangeName}.Validate())
		}
	})

	t.Run("Validate rejeita janela desconhecida", func(t *testing.T) {
		assert.Error(t, DatasetFilters{Product: ProductAll, Range: "45d"}.Validate())
	})

	t.Run("RangeDays", func(t *testing.T) {
		assert.Equal(t, 30, DatasetFilters{Range: RangeLast30}.RangeDays())
		assert.Equal(t, 0, DatasetFilters{Range: RangeAll}.RangeDays())
	})
}
