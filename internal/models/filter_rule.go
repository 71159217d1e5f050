package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterRule represents a call filter rule. A rule blocks a call when the
// caller's country, location, or the current time of day matches one of its
// criteria. A rule whose criteria are all empty matches nothing. Rules are
// immutable once created; the only mutations are add and remove.
type FilterRule struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Countries  []string           `bson:"countries" json:"countries"`
	Locations  []string           `bson:"locations" json:"locations"`
	TimeRanges []string           `bson:"timeRanges" json:"timeRanges"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
