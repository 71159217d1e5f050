package services

import (
	"context"

	"github.com/rsjanwa/call-filter-backend/internal/repositories"
)

// MaintenanceService handles the destructive reset operation.
type MaintenanceService struct {
	ruleRepo   repositories.RuleRepository
	listRepo   repositories.PhoneListRepository
	lookupRepo repositories.LookupRepository
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(ruleRepo repositories.RuleRepository, listRepo repositories.PhoneListRepository, lookupRepo repositories.LookupRepository) *MaintenanceService {
	return &MaintenanceService{
		ruleRepo:   ruleRepo,
		listRepo:   listRepo,
		lookupRepo: lookupRepo,
	}
}

// ResetAll clears the filter rules, phone lists and lookup history. Link
// records and the disconnection audit log have their own clear operations
// and are left alone. Each collection is cleared independently; a failure
// stops the reset with earlier collections already emptied.
func (s *MaintenanceService) ResetAll(ctx context.Context) error {
	if err := s.ruleRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.listRepo.DeleteAll(ctx); err != nil {
		return err
	}
	return s.lookupRepo.DeleteAll(ctx)
}
