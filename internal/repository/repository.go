// Package repository provides access to the CV record store. The store is
// injected into services as an interface so the Mongo-backed implementation
// can be swapped for the in-memory one in tests.
package repository

import (
	"context"
	"errors"

	"github.com/hebrew-cv/cv-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CVRepository is the record store contract for CV documents
type CVRepository interface {
	// Get returns the record for the given id, or models.ErrCVNotFound
	Get(ctx context.Context, id string) (*models.CVRecord, error)
	// Put inserts or replaces the record keyed by its id
	Put(ctx context.Context, record *models.CVRecord) error
	// List returns all records sorted by update time, newest first
	List(ctx context.Context) ([]models.CVRecord, error)
	// Delete removes the record for the given id, or models.ErrCVNotFound
	Delete(ctx context.Context, id string) error
}

// MongoCVRepository stores CV records in a MongoDB collection
type MongoCVRepository struct {
	collection *mongo.Collection
}

// NewMongoCVRepository creates a repository backed by the given collection
func NewMongoCVRepository(collection *mongo.Collection) *MongoCVRepository {
	return &MongoCVRepository{collection: collection}
}

func (r *MongoCVRepository) Get(ctx context.Context, id string) (*models.CVRecord, error) {
	if id == "" {
		return nil, models.ErrEmptyCVID
	}

	var record models.CVRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrCVNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *MongoCVRepository) Put(ctx context.Context, record *models.CVRecord) error {
	if record == nil {
		return models.ErrNilCVRecord
	}
	if record.ID == "" {
		return models.ErrEmptyCVID
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record, opts)
	return err
}

func (r *MongoCVRepository) List(ctx context.Context) ([]models.CVRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.CVRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *MongoCVRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return models.ErrEmptyCVID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrCVNotFound
	}
	return nil
}
