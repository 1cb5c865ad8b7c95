package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func fixedClock(date string) func() time.Time {
	parsed, err := time.ParseInLocation(time.DateOnly, date, time.Local)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return parsed.Add(12 * time.Hour) }
}

func TestService_BuildSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dataset := &domain.Dataset{
		ID: "ds0001",
		Records: []domain.SalesRecord{
			record("2024-05-01", 100, "General"),
			record("2024-05-02", 200, "General"),
			record("2024-04-15", 50, "General"),
		},
		UploadedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.Local),
	}

	mockRepo := mocks.NewMockDatasetRepository(ctrl)
	mockRepo.EXPECT().GetByID("ds0001").Return(dataset, nil).AnyTimes()

	service := NewService(mockRepo).WithClock(fixedClock("2024-05-10"))

	snapshot, err := service.BuildSnapshot("ds0001", domain.DatasetFilters{})
	require.NoError(t, err)

	assert.Equal(t, "ds0001", snapshot.DatasetID)
	assert.Equal(t, domain.DefaultFilters(), snapshot.Filters)
	assert.Equal(t, 3, snapshot.RecordCount)

	// KPIs do mês corrente contra o mês de calendário anterior
	assert.Equal(t, 300.0, snapshot.Totals.CurrentMonth)
	assert.Equal(t, 50.0, snapshot.Totals.PreviousMonth)
	assert.Equal(t, 350.0, snapshot.Totals.Overall)
	assert.Equal(t, 500.0, snapshot.Totals.GrowthPercent)

	require.Len(t, snapshot.Monthly, 2)
	assert.Equal(t, "04-2024", snapshot.Monthly[0].Period)
	assert.Equal(t, "05-2024", snapshot.Monthly[1].Period)

	// Média (50+300)/2 = 175; diferença 125 > 15% da média (26.25)
	assert.Equal(t, 175.0, snapshot.Comparison.Average)
	assert.Equal(t, domain.InsightExceptional, snapshot.Insight.Category)
	assert.Equal(t, domain.SeverityPositive, snapshot.Insight.Severity)

	require.Len(t, snapshot.TopProducts, 1)
	assert.Equal(t, domain.DefaultProduct, snapshot.TopProducts[0].Product)
	assert.Equal(t, 350.0, snapshot.TopProducts[0].Total)

	// Projeção: 350/3 = 116.67 arredondado para 117, 7 dias a partir de amanhã
	require.Len(t, snapshot.Forecast, ForecastHorizonDays)
	assert.Equal(t, 117.0, snapshot.Forecast[0].Projected)
	assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, time.Local), snapshot.Forecast[0].Date)

	// O snapshot é função pura de (dataset, filtros, hoje): duas chamadas
	// idênticas produzem o mesmo resultado fora do carimbo de geração
	again, err := service.BuildSnapshot("ds0001", domain.DatasetFilters{})
	require.NoError(t, err)
	assert.Equal(t, snapshot, again)
}

func TestService_BuildSnapshot_GrowthZeroWithoutPreviousMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dataset := &domain.Dataset{
		ID: "ds0002",
		Records: []domain.SalesRecord{
			record("2024-05-01", 1000, "General"),
		},
	}

	mockRepo := mocks.NewMockDatasetRepository(ctrl)
	mockRepo.EXPECT().GetByID("ds0002").Return(dataset, nil)

	service := NewService(mockRepo).WithClock(fixedClock("2024-05-10"))

	snapshot, err := service.BuildSnapshot("ds0002", domain.DatasetFilters{})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, snapshot.Totals.CurrentMonth)
	assert.Equal(t, 0.0, snapshot.Totals.PreviousMonth)
	assert.Equal(t, 0.0, snapshot.Totals.GrowthPercent)
}

func TestService_BuildSnapshot_TopProductsIgnoreFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dataset := &domain.Dataset{
		ID: "ds0003",
		Records: []domain.SalesRecord{
			record("2023-01-01", 9000, "Jeans"), // fora de qualquer janela recente
			record("2024-05-01", 100, "Camiseta"),
		},
	}

	mockRepo := mocks.NewMockDatasetRepository(ctrl)
	mockRepo.EXPECT().GetByID("ds0003").Return(dataset, nil)

	service := NewService(mockRepo).WithClock(fixedClock("2024-05-10"))

	snapshot, err := service.BuildSnapshot("ds0003", domain.DatasetFilters{Range: domain.RangeLast30})
	require.NoError(t, err)

	// A janela de 30 dias deixa só a Camiseta nos agregados
	assert.Equal(t, 1, snapshot.RecordCount)
	assert.Equal(t, 100.0, snapshot.Totals.Overall)

	// Mas o ranking continua sobre o dataset completo
	require.Len(t, snapshot.TopProducts, 2)
	assert.Equal(t, "Jeans", snapshot.TopProducts[0].Product)
	assert.Equal(t, 9000.0, snapshot.TopProducts[0].Total)
}

func TestService_BuildSnapshot_ProductFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dataset := &domain.Dataset{
		ID: "ds0004",
		Records: []domain.SalesRecord{
			record("2024-05-01", 100, "Camiseta"),
			record("2024-05-02", 200, "Gorra"),
		},
	}

	mockRepo := mocks.NewMockDatasetRepository(ctrl)
	mockRepo.EXPECT().GetByID("ds0004").Return(dataset, nil)

	service := NewService(mockRepo).WithClock(fixedClock("2024-05-10"))

	snapshot, err := service.BuildSnapshot("ds0004", domain.DatasetFilters{Product: "Gorra"})
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.RecordCount)
	assert.Equal(t, 200.0, snapshot.Totals.Overall)
	assert.Len(t, snapshot.TopProducts, 2)
}

func TestService_BuildSnapshot_EmptyAfterFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dataset := &domain.Dataset{
		ID: "ds0005",
		Records: []domain.SalesRecord{
			record("2024-05-01", 100, "Camiseta"),
		},
	}

	mockRepo := mocks.NewMockDatasetRepository(ctrl)
	mockRepo.EXPECT().GetByID("ds0005").Return(dataset, nil)

	service := NewService(mockRepo).WithClock(fixedClock("2024-05-10"))

	snapshot, err := service.BuildSnapshot("ds0005", domain.DatasetFilters{Product: "Inexistente"})
	require.NoError(t, err)

	assert.Equal(t, 0, snapshot.RecordCount)
	assert.Equal(t, domain.InsightNoData, snapshot.Insight.Category)
	assert.Empty(t, snapshot.Monthly)

	require.Len(t, snapshot.Forecast, ForecastHorizonDays)
	for _, point := range snapshot.Forecast {
		assert.Equal(t, 0.0, point.Projected)
	}
}

func TestService_BuildSnapshot_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDatasetRepository(ctrl)
	service := NewService(mockRepo).WithClock(fixedClock("2024-05-10"))

	t.Run("Dataset inexistente", func(t *testing.T) {
		mockRepo.EXPECT().GetByID("nao-existe").Return(nil, repository.ErrDatasetNotFound)

		_, err := service.BuildSnapshot("nao-existe", domain.DatasetFilters{})
		assert.ErrorIs(t, err, repository.ErrDatasetNotFound)
	})

	t.Run("Janela de datas desconhecida", func(t *testing.T) {
		mockRepo.EXPECT().GetByID("ds0001").Return(&domain.Dataset{ID: "ds0001"}, nil)

		_, err := service.BuildSnapshot("ds0001", domain.DatasetFilters{Range: "45d"})
		assert.Error(t, err)
	})
}
