package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/models"
	"github.com/rsjanwa/call-filter-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LookupRepository implements the repositories.LookupRepository interface
type LookupRepository struct {
	collection *mongo.Collection
}

// NewLookupRepository creates a new LookupRepository
func NewLookupRepository(db *mongo.Database) repositories.LookupRepository {
	return &LookupRepository{
		collection: db.Collection("api_history"),
	}
}

// Create appends a lookup record to the history
func (r *LookupRepository) Create(ctx context.Context, record *models.LookupRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, record)
	return errors.Wrap(err, "failed to insert lookup record")
}

// FindAll finds all lookup records, newest first
func (r *LookupRepository) FindAll(ctx context.Context) ([]*models.LookupRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query lookup history")
	}
	defer cursor.Close(ctx)

	var records []*models.LookupRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode lookup history")
	}
	if records == nil {
		records = []*models.LookupRecord{}
	}
	return records, nil
}

// DeleteAll removes the entire lookup history
func (r *LookupRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "failed to clear lookup history")
}
