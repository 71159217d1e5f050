package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AadhaarLink maps an Aadhaar number to the mobile numbers linked to it.
// The Aadhaar number is exactly 12 digits, each mobile exactly 10 digits,
// and the mobile set never contains duplicates. A link whose mobile set
// becomes empty after reconciliation is deleted rather than kept around.
type AadhaarLink struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Aadhaar   string             `bson:"aadhaar" json:"aadhaar"`
	Mobiles   []string           `bson:"mobiles" json:"mobiles"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LinkRow is one flattened (aadhaar, mobile) pair for tabular display and
// CSV export.
type LinkRow struct {
	Aadhaar string `json:"aadhaarNumber"`
	Mobile  string `json:"mobileNumber"`
}

// Mobile status labels produced by reconciliation.
const (
	StatusActive     = "Active"
	StatusReassigned = "Reassigned"
)

// StatusEntry is one row of a reconciliation status report.
type StatusEntry struct {
	Aadhaar string `json:"aadhaarNumber"`
	Mobile  string `json:"mobileNumber"`
	Status  string `json:"status"`
}
