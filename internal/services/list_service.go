package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/models"
	"github.com/rsjanwa/call-filter-backend/internal/repositories"
)

// ListService manages the whitelist, blacklist and blocked phone lists.
type ListService struct {
	listRepo repositories.PhoneListRepository
}

// NewListService creates a new ListService
func NewListService(listRepo repositories.PhoneListRepository) *ListService {
	return &ListService{
		listRepo: listRepo,
	}
}

// AddNumber adds a number to the named list.
func (s *ListService) AddNumber(ctx context.Context, listName, number string) error {
	number, err := validateListInput(listName, number)
	if err != nil {
		return err
	}
	return s.listRepo.AddNumber(ctx, listName, number)
}

// RemoveNumber removes a number from the named list.
func (s *ListService) RemoveNumber(ctx context.Context, listName, number string) error {
	number, err := validateListInput(listName, number)
	if err != nil {
		return err
	}
	return s.listRepo.RemoveNumber(ctx, listName, number)
}

// GetNumbers returns the members of the named list.
func (s *ListService) GetNumbers(ctx context.Context, listName string) ([]string, error) {
	if !models.IsValidListName(listName) {
		return nil, errors.Wrapf(ErrMalformedInput, "unknown list %q", listName)
	}
	return s.listRepo.FindNumbers(ctx, listName)
}

func validateListInput(listName, number string) (string, error) {
	if !models.IsValidListName(listName) {
		return "", errors.Wrapf(ErrMalformedInput, "unknown list %q", listName)
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return "", errors.Wrap(ErrMalformedInput, "number is required")
	}
	return number, nil
}
