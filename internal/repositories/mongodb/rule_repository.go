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

// RuleRepository implements the repositories.RuleRepository interface
type RuleRepository struct {
	collection *mongo.Collection
}

// NewRuleRepository creates a new RuleRepository
func NewRuleRepository(db *mongo.Database) repositories.RuleRepository {
	return &RuleRepository{
		collection: db.Collection("filter_rules"),
	}
}

// Create inserts a new filter rule
func (r *RuleRepository) Create(ctx context.Context, rule *models.FilterRule) error {
	if rule.ID.IsZero() {
		rule.ID = primitive.NewObjectID()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, rule)
	return errors.Wrap(err, "failed to insert filter rule")
}

// Delete removes a filter rule by ID
func (r *RuleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "failed to delete filter rule")
}

// FindAll finds all filter rules in insertion order. ObjectIDs are
// time-prefixed, so sorting on _id preserves the order rules were added.
func (r *RuleRepository) FindAll(ctx context.Context) ([]*models.FilterRule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query filter rules")
	}
	defer cursor.Close(ctx)

	var rules []*models.FilterRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, errors.Wrap(err, "failed to decode filter rules")
	}
	if rules == nil {
		rules = []*models.FilterRule{}
	}
	return rules, nil
}

// DeleteAll removes every filter rule
func (r *RuleRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "failed to clear filter rules")
}
