package services

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/models"
	"github.com/rsjanwa/call-filter-backend/internal/repositories"
	"github.com/rsjanwa/call-filter-backend/pkg/numlookup"
)

// ErrMalformedInput is returned when a request carries input the core
// refuses to process (blank number, bad Aadhaar format, unknown list name).
var ErrMalformedInput = errors.New("malformed input")

// NumberValidator is the NumLookup gateway as the checker sees it.
type NumberValidator interface {
	Validate(ctx context.Context, number string) (*numlookup.Result, error)
}

// LookupService runs the full number check: list short-circuit, NumLookup
// validation, spam detection, history persistence, then rule evaluation.
type LookupService struct {
	gateway    NumberValidator
	listRepo   repositories.PhoneListRepository
	lookupRepo repositories.LookupRepository
	filter     *FilterService
}

// NewLookupService creates a new LookupService
func NewLookupService(gateway NumberValidator, listRepo repositories.PhoneListRepository, lookupRepo repositories.LookupRepository, filter *FilterService) *LookupService {
	return &LookupService{
		gateway:    gateway,
		listRepo:   listRepo,
		lookupRepo: lookupRepo,
		filter:     filter,
	}
}

// CheckNumber checks a mobile number. List membership decides first, in
// priority order blacklist, blocked, whitelist; only unlisted numbers reach
// the NumLookup API. A gateway failure propagates to the caller as an
// explicit error and is never turned into an allow or block decision.
// Every successful validation is recorded in the lookup history before the
// rules run.
func (s *LookupService) CheckNumber(ctx context.Context, number string) (*models.CheckResult, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, errors.Wrap(ErrMalformedInput, "number is required")
	}

	for _, listName := range []string{models.ListBlacklist, models.ListBlocked} {
		listed, err := s.isListed(ctx, listName, number)
		if err != nil {
			return nil, err
		}
		if listed {
			return &models.CheckResult{
				Number:   number,
				ListedIn: listName,
				Allowed:  false,
				Reason:   "number is in the " + listName,
			}, nil
		}
	}

	whitelisted, err := s.isListed(ctx, models.ListWhitelist, number)
	if err != nil {
		return nil, err
	}
	if whitelisted {
		return &models.CheckResult{
			Number:   number,
			ListedIn: models.ListWhitelist,
			Allowed:  true,
			Reason:   "number is whitelisted",
		}, nil
	}

	result, err := s.gateway.Validate(ctx, number)
	if err != nil {
		return nil, err
	}

	validation := toValidation(number, result)
	record := &models.LookupRecord{
		Number:    number,
		Response:  validation,
		Timestamp: time.Now(),
	}
	if err := s.lookupRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	allowed, reason, err := s.filter.Evaluate(ctx, FilterInput{
		CountryCode: validation.CountryCode,
		Location:    validation.Location,
	}, time.Now())
	if err != nil {
		return nil, err
	}

	return &models.CheckResult{
		Number:     number,
		Allowed:    allowed,
		Reason:     reason,
		Validation: &validation,
	}, nil
}

// History returns the lookup history, newest first.
func (s *LookupService) History(ctx context.Context) ([]*models.LookupRecord, error) {
	return s.lookupRepo.FindAll(ctx)
}

// Stats summarises the lookup history.
func (s *LookupService) Stats(ctx context.Context) (*models.LookupStats, error) {
	records, err := s.lookupRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.LookupStats{Total: int64(len(records))}
	for _, record := range records {
		if record.Response.Valid {
			stats.Valid++
		}
		if record.Response.SpamStatus {
			stats.Spam++
		}
	}
	if stats.Total > 0 {
		stats.SpamPercentage = float64(stats.Spam) / float64(stats.Total) * 100
	}
	return stats, nil
}

// ClearHistory deletes the entire lookup history.
func (s *LookupService) ClearHistory(ctx context.Context) error {
	return s.lookupRepo.DeleteAll(ctx)
}

func (s *LookupService) isListed(ctx context.Context, listName, number string) (bool, error) {
	numbers, err := s.listRepo.FindNumbers(ctx, listName)
	if err != nil {
		return false, err
	}
	for _, n := range numbers {
		if n == number {
			return true, nil
		}
	}
	return false, nil
}

// toValidation flattens a gateway result into the stored form. The spam
// flag is derived here: a number that validates but lacks location, carrier
// or line type data is flagged.
func toValidation(number string, result *numlookup.Result) models.NumberValidation {
	v := models.NumberValidation{
		Number:      number,
		Valid:       result.Valid,
		CountryCode: deref(result.CountryCode),
		CountryName: deref(result.CountryName),
		Location:    deref(result.Location),
		Carrier:     deref(result.Carrier),
		LineType:    deref(result.LineType),
	}
	if result.Number != "" {
		v.Number = result.Number
	}
	v.SpamStatus = v.Valid && (v.Location == "" || v.Carrier == "" || v.LineType == "")
	return v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
