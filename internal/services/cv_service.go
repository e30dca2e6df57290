// Package services implements the business logic between the HTTP handlers
// and the record store.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"

	"github.com/hebrew-cv/cv-api/internal/models"
	"github.com/hebrew-cv/cv-api/internal/observability"
	"github.com/hebrew-cv/cv-api/internal/redisclient"
	"github.com/hebrew-cv/cv-api/internal/render"
	"github.com/hebrew-cv/cv-api/internal/repository"
	"github.com/hebrew-cv/cv-api/internal/utils"
)

// CVServiceInstance is the global CV service, wired up in main
var CVServiceInstance *CVService

// defaultPhoneRegion is used when parsing phone numbers without a country code
const defaultPhoneRegion = "IL"

// CVService stores and retrieves CV documents with a Redis read-through cache
// in front of the record store.
type CVService struct {
	repo     repository.CVRepository
	cache    *redisclient.Client
	cacheTTL time.Duration
}

// NewCVService creates a CV service. The cache may be nil, in which case every
// read goes to the record store.
func NewCVService(repo repository.CVRepository, cache *redisclient.Client, cacheTTL time.Duration) *CVService {
	return &CVService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func cacheKey(id string) string {
	return "cv:" + id
}

// newCVID generates a fresh record identifier
func newCVID() string {
	return fmt.Sprintf("cv_%d_%s", time.Now().UnixMilli(), utils.GenerateUUID()[:9])
}

// Save creates or updates a CV record. A document with an empty id gets a new
// one. Updates preserve the original creation time, and keep the previously
// chosen template unless the caller names a different one.
func (s *CVService) Save(ctx context.Context, data models.CVData, templateID string) (*models.CVRecord, error) {
	logger := observability.Logger()

	data.Normalize()
	s.checkPhone(data.PersonalInfo.Phone)

	id := data.ID
	isNew := id == ""
	if isNew {
		id = newCVID()
	}
	// The document carries its own id so editors can post it back verbatim
	data.ID = id

	now := time.Now().UTC()
	record := &models.CVRecord{
		ID:         id,
		Data:       data,
		TemplateID: render.DefaultTemplateID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var existing *models.CVRecord
	if !isNew {
		ctx2, span := utils.TraceRepositoryOp(ctx, "get", id)
		found, err := s.repo.Get(ctx2, id)
		span.End()
		if err != nil && !errors.Is(err, models.ErrCVNotFound) {
			observability.DatabaseOperations.WithLabelValues("get", "error").Inc()
			return nil, err
		}
		existing = found
	}
	if existing != nil {
		record.CreatedAt = existing.CreatedAt
		record.TemplateID = existing.TemplateID
	}
	if templateID != "" {
		record.TemplateID = templateID
	}

	ctx, span := utils.TraceRepositoryOp(ctx, "put", id)
	err := s.repo.Put(ctx, record)
	span.End()
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("put", "error").Inc()
		return nil, fmt.Errorf("failed to save CV record: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("put", "success").Inc()

	s.cacheSet(ctx, record)

	logger.Info("CV saved",
		zap.String("cvId", record.ID),
		zap.String("templateId", record.TemplateID),
		zap.Bool("created", existing == nil))

	return record, nil
}

// Get returns the record for the given id, going through the cache first
func (s *CVService) Get(ctx context.Context, id string) (*models.CVRecord, error) {
	if id == "" {
		return nil, models.ErrEmptyCVID
	}

	if record := s.cacheGet(ctx, id); record != nil {
		return record, nil
	}

	ctx, span := utils.TraceRepositoryOp(ctx, "get", id)
	record, err := s.repo.Get(ctx, id)
	span.End()
	if err != nil {
		if errors.Is(err, models.ErrCVNotFound) {
			return nil, err
		}
		observability.DatabaseOperations.WithLabelValues("get", "error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("get", "success").Inc()

	s.cacheSet(ctx, record)
	return record, nil
}

// List returns summaries of all stored CVs, newest first
func (s *CVService) List(ctx context.Context) ([]models.CVSummary, error) {
	ctx, span := utils.TraceRepositoryOp(ctx, "list", "")
	records, err := s.repo.List(ctx)
	span.End()
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("list", "error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("list", "success").Inc()

	summaries := make([]models.CVSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, models.CVSummary{
			CVID:       record.ID,
			Title:      record.Data.Title(),
			TemplateID: record.TemplateID,
			CreatedAt:  record.CreatedAt,
			UpdatedAt:  record.UpdatedAt,
			FullName:   record.Data.PersonalInfo.FullName,
			Email:      record.Data.PersonalInfo.Email,
		})
	}
	return summaries, nil
}

// Delete removes a record and drops its cache entry
func (s *CVService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return models.ErrEmptyCVID
	}

	ctx, span := utils.TraceRepositoryOp(ctx, "delete", id)
	err := s.repo.Delete(ctx, id)
	span.End()
	if err != nil {
		if errors.Is(err, models.ErrCVNotFound) {
			return err
		}
		observability.DatabaseOperations.WithLabelValues("delete", "error").Inc()
		return err
	}
	observability.DatabaseOperations.WithLabelValues("delete", "success").Inc()

	if s.cache != nil {
		if err := s.cache.Del(ctx, cacheKey(id)).Err(); err != nil {
			observability.Logger().Warn("failed to drop cache entry",
				zap.String("cvId", id), zap.Error(err))
		}
	}
	return nil
}

// checkPhone logs a warning for phone numbers that do not parse. Invalid
// numbers never block a save; the document is the user's to fill in.
func (s *CVService) checkPhone(phone string) {
	if phone == "" {
		return
	}
	parsed, err := phonenumbers.Parse(phone, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		observability.Logger().Warn("phone number failed validation",
			zap.String("region", defaultPhoneRegion))
	}
}

func (s *CVService) cacheGet(ctx context.Context, id string) *models.CVRecord {
	if s.cache == nil {
		return nil
	}

	ctx, span := utils.TraceCacheGet(ctx, cacheKey(id))
	defer span.End()

	data, err := s.cache.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		observability.CacheHits.WithLabelValues("miss").Inc()
		return nil
	}

	var record models.CVRecord
	if err := json.Unmarshal(data, &record); err != nil {
		observability.Logger().Warn("failed to decode cached CV",
			zap.String("cvId", id), zap.Error(err))
		observability.CacheHits.WithLabelValues("miss").Inc()
		return nil
	}

	observability.CacheHits.WithLabelValues("hit").Inc()
	return &record
}

func (s *CVService) cacheSet(ctx context.Context, record *models.CVRecord) {
	if s.cache == nil {
		return
	}

	ctx, span := utils.TraceCacheSet(ctx, cacheKey(record.ID), s.cacheTTL)
	defer span.End()

	data, err := json.Marshal(record)
	if err != nil {
		observability.Logger().Warn("failed to encode CV for cache",
			zap.String("cvId", record.ID), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, cacheKey(record.ID), data, s.cacheTTL).Err(); err != nil {
		observability.Logger().Warn("failed to cache CV",
			zap.String("cvId", record.ID), zap.Error(err))
	}
}
