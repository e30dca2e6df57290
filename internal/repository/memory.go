package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/hebrew-cv/cv-api/internal/models"
)

// MemoryCVRepository is a concurrency-safe in-memory record store, used in
// tests and when running without MongoDB.
type MemoryCVRepository struct {
	mu      sync.RWMutex
	records map[string]models.CVRecord
}

// NewMemoryCVRepository creates an empty in-memory repository
func NewMemoryCVRepository() *MemoryCVRepository {
	return &MemoryCVRepository{records: make(map[string]models.CVRecord)}
}

func (r *MemoryCVRepository) Get(ctx context.Context, id string) (*models.CVRecord, error) {
	if id == "" {
		return nil, models.ErrEmptyCVID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, models.ErrCVNotFound
	}
	return &record, nil
}

func (r *MemoryCVRepository) Put(ctx context.Context, record *models.CVRecord) error {
	if record == nil {
		return models.ErrNilCVRecord
	}
	if record.ID == "" {
		return models.ErrEmptyCVID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.ID] = *record
	return nil
}

func (r *MemoryCVRepository) List(ctx context.Context) ([]models.CVRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]models.CVRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
	return records, nil
}

func (r *MemoryCVRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return models.ErrEmptyCVID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return models.ErrCVNotFound
	}
	delete(r.records, id)
	return nil
}
