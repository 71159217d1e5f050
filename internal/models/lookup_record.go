package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NumberValidation holds the fields returned by the NumLookup API for a
// validated number. Location, Carrier and LineType are empty when the
// provider omits them; SpamStatus is derived, not returned by the provider:
// a number that validates but lacks any of the three is flagged as spam.
type NumberValidation struct {
	Number      string `bson:"number" json:"number"`
	Valid       bool   `bson:"valid" json:"valid"`
	CountryCode string `bson:"countryCode" json:"countryCode"`
	CountryName string `bson:"countryName" json:"countryName"`
	Location    string `bson:"location" json:"location"`
	Carrier     string `bson:"carrier" json:"carrier"`
	LineType    string `bson:"lineType" json:"lineType"`
	SpamStatus  bool   `bson:"spamStatus" json:"spamStatus"`
}

// LookupRecord is the historical record of one NumLookup API call. Records
// are append-only; the only mutation is a bulk clear.
type LookupRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Number    string             `bson:"number" json:"number"`
	Response  NumberValidation   `bson:"response" json:"response"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// LookupStats summarises the lookup history.
type LookupStats struct {
	Total          int64   `json:"total"`
	Valid          int64   `json:"valid"`
	Spam           int64   `json:"spam"`
	SpamPercentage float64 `json:"spamPercentage"`
}

// CheckResult is the outcome of a full number check: list membership,
// validation, spam detection and filter rule evaluation.
type CheckResult struct {
	Number     string            `json:"number"`
	ListedIn   string            `json:"listedIn,omitempty"`
	Allowed    bool              `json:"allowed"`
	Reason     string            `json:"reason"`
	Validation *NumberValidation `json:"validation,omitempty"`
}
