package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// ErrDatasetNotFound indica que o dataset não existe ou já expirou
var ErrDatasetNotFound = errors.New("dataset not found")

// DatasetRepository guarda os datasets importados. A implementação padrão é
// em memória por decisão de produto ("no datos almacenados"): os dados
// enviados nunca tocam disco nem banco.
type DatasetRepository interface {
	Save(dataset *domain.Dataset) error
	GetByID(id string) (*domain.Dataset, error)
	Delete(id string) error
	DeleteExpired(now time.Time, ttl time.Duration) (int, error)
	Count() int
}

type memoryDatasetRepository struct {
	mu       sync.RWMutex
	datasets map[string]*domain.Dataset
}

// NewMemoryDatasetRepository cria o repositório em memória de datasets
func NewMemoryDatasetRepository() DatasetRepository {
	return &memoryDatasetRepository{
		datasets: make(map[string]*domain.Dataset),
	}
}

func (r *memoryDatasetRepository) Save(dataset *domain.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.datasets[dataset.ID] = dataset
	return nil
}

func (r *memoryDatasetRepository) GetByID(id string) (*domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dataset, ok := r.datasets[id]
	if !ok {
		return nil, ErrDatasetNotFound
	}
	return dataset, nil
}

func (r *memoryDatasetRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.datasets[id]; !ok {
		return ErrDatasetNotFound
	}
	delete(r.datasets, id)
	return nil
}

func (r *memoryDatasetRepository) DeleteExpired(now time.Time, ttl time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, dataset := range r.datasets {
		if dataset.ExpiredAt(now, ttl) {
			delete(r.datasets, id)
			removed++
		}
	}
	return removed, nil
}

func (r *memoryDatasetRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.datasets)
}
