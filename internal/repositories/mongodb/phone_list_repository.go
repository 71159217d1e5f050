package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/models"
	"github.com/rsjanwa/call-filter-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PhoneListRepository implements the repositories.PhoneListRepository interface
type PhoneListRepository struct {
	collection *mongo.Collection
}

// NewPhoneListRepository creates a new PhoneListRepository
func NewPhoneListRepository(db *mongo.Database) repositories.PhoneListRepository {
	return &PhoneListRepository{
		collection: db.Collection("phone_lists"),
	}
}

// AddNumber adds a number to the named list, creating the list document on
// first use. $addToSet keeps membership set-valued.
func (r *PhoneListRepository) AddNumber(ctx context.Context, listName, number string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"listName": listName},
		bson.M{"$addToSet": bson.M{"numbers": number}},
		options.Update().SetUpsert(true),
	)
	return errors.Wrapf(err, "failed to add number to %s", listName)
}

// RemoveNumber removes a number from the named list
func (r *PhoneListRepository) RemoveNumber(ctx context.Context, listName, number string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"listName": listName},
		bson.M{"$pull": bson.M{"numbers": number}},
	)
	return errors.Wrapf(err, "failed to remove number from %s", listName)
}

// FindNumbers returns the members of the named list. A list that was never
// written to is simply empty.
func (r *PhoneListRepository) FindNumbers(ctx context.Context, listName string) ([]string, error) {
	var list models.PhoneList
	err := r.collection.FindOne(ctx, bson.M{"listName": listName}).Decode(&list)
	if err == mongo.ErrNoDocuments {
		return []string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", listName)
	}
	if list.Numbers == nil {
		list.Numbers = []string{}
	}
	return list.Numbers, nil
}

// DeleteAll removes every list document
func (r *PhoneListRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return errors.Wrap(err, "failed to clear phone lists")
}
