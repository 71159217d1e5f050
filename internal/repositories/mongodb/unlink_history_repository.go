package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/models"
	"github.com/rsjanwa/call-filter-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UnlinkHistoryRepository implements the repositories.UnlinkHistoryRepository interface
type UnlinkHistoryRepository struct {
	collection *mongo.Collection
}

// NewUnlinkHistoryRepository creates a new UnlinkHistoryRepository
func NewUnlinkHistoryRepository(db *mongo.Database) repositories.UnlinkHistoryRepository {
	return &UnlinkHistoryRepository{
		collection: db.Collection("unlinked_history"),
	}
}

// Create appends an unlink record to the audit log
func (r *UnlinkHistoryRepository) Create(ctx context.Context, record *models.UnlinkRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, record)
	return errors.Wrap(err, "failed to insert unlink record")
}

// FindAll finds all audit entries in insertion order
func (r *UnlinkHistoryRepository) FindAll(ctx context.Context) ([]*models.UnlinkRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query unlink history")
	}
	defer cursor.Close(ctx)

	var records []*models.UnlinkRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode unlink history")
	}
	if records == nil {
		records = []*models.UnlinkRecord{}
	}
	return records, nil
}

// DeleteAll clears the audit log
func (r *UnlinkHistoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "failed to clear unlink history")
}
