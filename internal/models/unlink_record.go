package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnlinkRecord is one audit log entry recording that a mobile number was
// found inactive and unlinked from an Aadhaar record. Entries are append-only
// and survive the deletion of the link they refer to; the only mutation is
// an explicit bulk clear.
type UnlinkRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Aadhaar        string             `bson:"aadhaar" json:"aadhaarNumber"`
	Mobile         string             `bson:"mobile" json:"mobileNumber"`
	Status         string             `bson:"status" json:"status"`
	DisconnectedAt time.Time          `bson:"disconnectedAt" json:"disconnectedAt"`
}
