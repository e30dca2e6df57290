package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hebrew-cv/cv-api/internal/models"
)

func record(id string, updatedAt time.Time) *models.CVRecord {
	return &models.CVRecord{
		ID:         id,
		TemplateID: "classic",
		CreatedAt:  updatedAt,
		UpdatedAt:  updatedAt,
	}
}

func TestMemoryRepositoryPutAndGet(t *testing.T) {
	repo := NewMemoryCVRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, record("cv_1", time.Now())))

	got, err := repo.Get(ctx, "cv_1")
	require.NoError(t, err)
	assert.Equal(t, "cv_1", got.ID)
}

func TestMemoryRepositoryGetNotFound(t *testing.T) {
	repo := NewMemoryCVRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrCVNotFound)
}

func TestMemoryRepositoryEmptyID(t *testing.T) {
	repo := NewMemoryCVRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, "")
	assert.ErrorIs(t, err, models.ErrEmptyCVID)

	assert.ErrorIs(t, repo.Delete(ctx, ""), models.ErrEmptyCVID)
	assert.ErrorIs(t, repo.Put(ctx, &models.CVRecord{}), models.ErrEmptyCVID)
	assert.ErrorIs(t, repo.Put(ctx, nil), models.ErrNilCVRecord)
}

func TestMemoryRepositoryGetReturnsCopy(t *testing.T) {
	repo := NewMemoryCVRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, record("cv_1", time.Now())))

	first, err := repo.Get(ctx, "cv_1")
	require.NoError(t, err)
	first.TemplateID = "modern"

	second, err := repo.Get(ctx, "cv_1")
	require.NoError(t, err)
	assert.Equal(t, "classic", second.TemplateID)
}

func TestMemoryRepositoryListSortsByUpdateTime(t *testing.T) {
	repo := NewMemoryCVRepository()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, repo.Put(ctx, record("cv_old", base.Add(-2*time.Hour))))
	require.NoError(t, repo.Put(ctx, record("cv_new", base)))
	require.NoError(t, repo.Put(ctx, record("cv_mid", base.Add(-time.Hour))))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "cv_new", records[0].ID)
	assert.Equal(t, "cv_mid", records[1].ID)
	assert.Equal(t, "cv_old", records[2].ID)
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryCVRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, record("cv_1", time.Now())))
	require.NoError(t, repo.Delete(ctx, "cv_1"))

	_, err := repo.Get(ctx, "cv_1")
	assert.ErrorIs(t, err, models.ErrCVNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "cv_1"), models.ErrCVNotFound)
}
