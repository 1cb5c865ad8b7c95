package insighting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// TopProductsLimit é o tamanho fixo do ranking de produtos
const TopProductsLimit = 5

// Insighter monta a fotografia completa do dashboard para um dataset
type Insighter interface {
	BuildSnapshot(datasetID string, filters domain.DatasetFilters) (*domain.DashboardSnapshot, error)
}

type Service struct {
	datasetRepo repository.DatasetRepository
	now         func() time.Time
}

// NewService cria o serviço de insights
func NewService(datasetRepo repository.DatasetRepository) *Service {
	return &Service{
		datasetRepo: datasetRepo,
		now:         time.Now,
	}
}

// WithClock troca a fonte de "hoje"; os agregados de mês corrente e a
// projeção dependem do dia da consulta, então os testes precisam fixá-lo
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// BuildSnapshot recalcula todos os derivados do dataset para a seleção de
// filtros informada. Nada é cacheado entre chamadas: o snapshot é função pura
// de (dataset, filtros, hoje), o que elimina qualquer dessincronização entre
// os cartões do dashboard.
func (s *Service) BuildSnapshot(datasetID string, filters domain.DatasetFilters) (*domain.DashboardSnapshot, error) {
	dataset, err := s.datasetRepo.GetByID(datasetID)
	if err != nil {
		return nil, err
	}

	filters = filters.Normalize()
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	today := utils.LocalDay(now)

	filtered := FilterByProduct(
		FilterByRange(dataset.Records, today, filters),
		filters.Product,
	)

	buckets := MonthlyBuckets(filtered)
	currentMonth := MonthTotal(buckets, today)
	previousMonth := MonthTotal(buckets, utils.PreviousMonth(today))
	comparison := CompareMonthly(buckets, today)

	snapshot := &domain.DashboardSnapshot{
		DatasetID:   dataset.ID,
		GeneratedAt: now,
		Filters:     filters,
		RecordCount: len(filtered),
		Totals: domain.Totals{
			CurrentMonth:  currentMonth,
			PreviousMonth: previousMonth,
			Overall:       SumSales(filtered),
			GrowthPercent: GrowthPercent(currentMonth, previousMonth),
		},
		Monthly:    buckets,
		Comparison: comparison,
		Insight:    domain.SelectInsight(comparison, len(filtered) > 0),
		// Ranking sempre sobre o dataset completo, ignorando os filtros
		TopProducts: TopProducts(dataset.Records, TopProductsLimit),
		Forecast:    Forecast(filtered, today),
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id":    dataset.ID,
		"range":         filters.Range,
		"product":       filters.Product,
		"records":       snapshot.RecordCount,
		"insight":       snapshot.Insight.Category,
		"current_month": snapshot.Totals.CurrentMonth,
	}).Debug("insighting: snapshot gerado")

	return snapshot, nil
}
