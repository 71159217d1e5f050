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

// AadhaarLinkRepository implements the repositories.AadhaarLinkRepository interface
type AadhaarLinkRepository struct {
	collection *mongo.Collection
}

// NewAadhaarLinkRepository creates a new AadhaarLinkRepository
func NewAadhaarLinkRepository(db *mongo.Database) repositories.AadhaarLinkRepository {
	return &AadhaarLinkRepository{
		collection: db.Collection("aadhaar_records"),
	}
}

// Create inserts a new Aadhaar link record
func (r *AadhaarLinkRepository) Create(ctx context.Context, link *models.AadhaarLink) error {
	if link.ID.IsZero() {
		link.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, link)
	return errors.Wrap(err, "failed to insert aadhaar link")
}

// FindByAadhaar finds a link record by Aadhaar number. Returns (nil, nil)
// when no record exists.
func (r *AadhaarLinkRepository) FindByAadhaar(ctx context.Context, aadhaar string) (*models.AadhaarLink, error) {
	var link models.AadhaarLink
	err := r.collection.FindOne(ctx, bson.M{"aadhaar": aadhaar}).Decode(&link)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read aadhaar link")
	}
	return &link, nil
}

// FindAll finds all link records in insertion order
func (r *AadhaarLinkRepository) FindAll(ctx context.Context) ([]*models.AadhaarLink, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query aadhaar links")
	}
	defer cursor.Close(ctx)

	var links []*models.AadhaarLink
	if err := cursor.All(ctx, &links); err != nil {
		return nil, errors.Wrap(err, "failed to decode aadhaar links")
	}
	if links == nil {
		links = []*models.AadhaarLink{}
	}
	return links, nil
}

// UpdateMobiles replaces the mobile set of a link record in a single
// document update.
func (r *AadhaarLinkRepository) UpdateMobiles(ctx context.Context, aadhaar string, mobiles []string, updatedAt time.Time) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"aadhaar": aadhaar},
		bson.M{"$set": bson.M{"mobiles": mobiles, "updatedAt": updatedAt}},
	)
	return errors.Wrap(err, "failed to update aadhaar link mobiles")
}

// Delete removes a link record by Aadhaar number, reporting whether a
// record was actually deleted.
func (r *AadhaarLinkRepository) Delete(ctx context.Context, aadhaar string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"aadhaar": aadhaar})
	if err != nil {
		return false, errors.Wrap(err, "failed to delete aadhaar link")
	}
	return result.DeletedCount > 0, nil
}

// DeleteAll removes every link record
func (r *AadhaarLinkRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "failed to clear aadhaar links")
}
