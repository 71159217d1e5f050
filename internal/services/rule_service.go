package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/models"
	"github.com/rsjanwa/call-filter-backend/internal/repositories"
	"github.com/rsjanwa/call-filter-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RuleService handles filter rule management. Rules are immutable: the only
// operations are add, remove and list.
type RuleService struct {
	ruleRepo repositories.RuleRepository
}

// NewRuleService creates a new RuleService
func NewRuleService(ruleRepo repositories.RuleRepository) *RuleService {
	return &RuleService{
		ruleRepo: ruleRepo,
	}
}

// AddRule creates a new filter rule. The name is required; any combination
// of the three criteria may be empty, including all of them (such a rule
// matches nothing). Time ranges are stored as given; malformed ones are
// tolerated and skipped at evaluation time.
func (s *RuleService) AddRule(ctx context.Context, name string, countries, locations, timeRanges []string) (*models.FilterRule, error) {
	if name == "" {
		return nil, errors.Wrap(ErrMalformedInput, "rule name is required")
	}

	rule := &models.FilterRule{
		Name:       name,
		Countries:  utils.Dedupe(countries),
		Locations:  utils.Dedupe(locations),
		TimeRanges: utils.Dedupe(timeRanges),
		CreatedAt:  time.Now(),
	}
	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// GetRules returns all rules in insertion order.
func (s *RuleService) GetRules(ctx context.Context) ([]*models.FilterRule, error) {
	return s.ruleRepo.FindAll(ctx)
}

// RemoveRule deletes a rule by its hex ID.
func (s *RuleService) RemoveRule(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(ErrMalformedInput, "invalid rule id")
	}
	return s.ruleRepo.Delete(ctx, objectID)
}
