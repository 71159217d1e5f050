package repositories

import (
	"context"
	"time"

	"github.com/rsjanwa/call-filter-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RuleRepository defines the interface for filter rule operations
type RuleRepository interface {
	Create(ctx context.Context, rule *models.FilterRule) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// FindAll returns rules in insertion order; the evaluator depends on
	// the order being stable across calls.
	FindAll(ctx context.Context) ([]*models.FilterRule, error)
	DeleteAll(ctx context.Context) error
}

// PhoneListRepository defines the interface for phone list operations
type PhoneListRepository interface {
	AddNumber(ctx context.Context, listName, number string) error
	RemoveNumber(ctx context.Context, listName, number string) error
	FindNumbers(ctx context.Context, listName string) ([]string, error)
	DeleteAll(ctx context.Context) error
}

// LookupRepository defines the interface for lookup history operations
type LookupRepository interface {
	Create(ctx context.Context, record *models.LookupRecord) error
	// FindAll returns records newest first.
	FindAll(ctx context.Context) ([]*models.LookupRecord, error)
	DeleteAll(ctx context.Context) error
}

// AadhaarLinkRepository defines the interface for Aadhaar-mobile link operations
type AadhaarLinkRepository interface {
	Create(ctx context.Context, link *models.AadhaarLink) error
	FindByAadhaar(ctx context.Context, aadhaar string) (*models.AadhaarLink, error)
	// FindAll returns links in insertion order; reconciliation depends on
	// the order being stable within a single pass.
	FindAll(ctx context.Context) ([]*models.AadhaarLink, error)
	UpdateMobiles(ctx context.Context, aadhaar string, mobiles []string, updatedAt time.Time) error
	Delete(ctx context.Context, aadhaar string) (bool, error)
	DeleteAll(ctx context.Context) error
}

// UnlinkHistoryRepository defines the interface for the disconnection audit log
type UnlinkHistoryRepository interface {
	Create(ctx context.Context, record *models.UnlinkRecord) error
	FindAll(ctx context.Context) ([]*models.UnlinkRecord, error)
	DeleteAll(ctx context.Context) error
}
