package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestMemoryDatasetRepository(t *testing.T) {
	repo := NewMemoryDatasetRepository()

	dataset := &domain.Dataset{
		ID:         "abc123",
		Filename:   "ventas.csv",
		UploadedAt: time.Now(),
	}

	require.NoError(t, repo.Save(dataset))
	assert.Equal(t, 1, repo.Count())

	found, err := repo.GetByID("abc123")
	require.NoError(t, err)
	assert.Equal(t, dataset, found)

	_, err = repo.GetByID("outro")
	assert.ErrorIs(t, err, ErrDatasetNotFound)

	require.NoError(t, repo.Delete("abc123"))
	assert.Equal(t, 0, repo.Count())

	assert.ErrorIs(t, repo.Delete("abc123"), ErrDatasetNotFound)
}

func TestMemoryDatasetRepository_SaveOverwrites(t *testing.T) {
	repo := NewMemoryDatasetRepository()

	require.NoError(t, repo.Save(&domain.Dataset{ID: "abc123", Filename: "v1.csv"}))
	require.NoError(t, repo.Save(&domain.Dataset{ID: "abc123", Filename: "v2.csv"}))

	assert.Equal(t, 1, repo.Count())

	found, err := repo.GetByID("abc123")
	require.NoError(t, err)
	assert.Equal(t, "v2.csv", found.Filename)
}

func TestMemoryDatasetRepository_DeleteExpired(t *testing.T) {
	repo := NewMemoryDatasetRepository()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)
	ttl := 2 * time.Hour

	require.NoError(t, repo.Save(&domain.Dataset{ID: "fresco", UploadedAt: now.Add(-1 * time.Hour)}))
	require.NoError(t, repo.Save(&domain.Dataset{ID: "no-limite", UploadedAt: now.Add(-2 * time.Hour)}))
	require.NoError(t, repo.Save(&domain.Dataset{ID: "vencido", UploadedAt: now.Add(-3 * time.Hour)}))

	removed, err := repo.DeleteExpired(now, ttl)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, repo.Count())

	_, err = repo.GetByID("vencido")
	assert.ErrorIs(t, err, ErrDatasetNotFound)

	_, err = repo.GetByID("no-limite")
	assert.NoError(t, err)
}
