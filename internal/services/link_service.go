package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/models"
	"github.com/rsjanwa/call-filter-backend/internal/repositories"
	"github.com/rsjanwa/call-filter-backend/internal/utils"
)

// LinkService manages Aadhaar-mobile link records and reconciles them
// against snapshots of currently active numbers.
type LinkService struct {
	linkRepo   repositories.AadhaarLinkRepository
	unlinkRepo repositories.UnlinkHistoryRepository

	// Reconciliation is a read-modify-write over every link record;
	// concurrent passes would race on the mobile sets, so only one runs
	// at a time.
	reconcileMu sync.Mutex
}

// NewLinkService creates a new LinkService
func NewLinkService(linkRepo repositories.AadhaarLinkRepository, unlinkRepo repositories.UnlinkHistoryRepository) *LinkService {
	return &LinkService{
		linkRepo:   linkRepo,
		unlinkRepo: unlinkRepo,
	}
}

// AddRecord links mobile numbers to an Aadhaar number. The Aadhaar number
// must be exactly 12 digits; mobiles that are not exactly 10 digits are
// dropped, and at least one valid mobile is required. Mobiles merge into an
// existing record with set-union semantics: adding the same number twice
// leaves a single occurrence.
func (s *LinkService) AddRecord(ctx context.Context, aadhaar string, mobiles []string) (*models.AadhaarLink, error) {
	aadhaar = strings.TrimSpace(aadhaar)
	if !utils.IsAadhaar(aadhaar) {
		return nil, errors.Wrap(ErrMalformedInput, "aadhaar must be a 12-digit number")
	}

	valid := []string{}
	for _, mobile := range mobiles {
		mobile = strings.TrimSpace(mobile)
		if utils.IsMobile(mobile) {
			valid = append(valid, mobile)
		}
	}
	valid = utils.Dedupe(valid)
	if len(valid) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "at least one 10-digit mobile number is required")
	}

	now := time.Now()

	existing, err := s.linkRepo.FindByAadhaar(ctx, aadhaar)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		link := &models.AadhaarLink{
			Aadhaar:   aadhaar,
			Mobiles:   valid,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.linkRepo.Create(ctx, link); err != nil {
			return nil, err
		}
		return link, nil
	}

	merged := utils.Dedupe(append(existing.Mobiles, valid...))
	if err := s.linkRepo.UpdateMobiles(ctx, aadhaar, merged, now); err != nil {
		return nil, err
	}
	existing.Mobiles = merged
	existing.UpdatedAt = now
	return existing, nil
}

// GetRecords returns one row per (aadhaar, mobile) pair, in store order.
// A non-empty search narrows the rows to mobiles containing the substring.
func (s *LinkService) GetRecords(ctx context.Context, search string) ([]models.LinkRow, error) {
	links, err := s.linkRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := []models.LinkRow{}
	for _, link := range links {
		for _, mobile := range link.Mobiles {
			if search != "" && !strings.Contains(mobile, search) {
				continue
			}
			rows = append(rows, models.LinkRow{Aadhaar: link.Aadhaar, Mobile: mobile})
		}
	}
	return rows, nil
}

// DeleteByAadhaar removes a link record, reporting whether one existed.
func (s *LinkService) DeleteByAadhaar(ctx context.Context, aadhaar string) (bool, error) {
	aadhaar = strings.TrimSpace(aadhaar)
	if !utils.IsAadhaar(aadhaar) {
		return false, errors.Wrap(ErrMalformedInput, "aadhaar must be a 12-digit number")
	}
	return s.linkRepo.Delete(ctx, aadhaar)
}

// ClearAll wipes every link record. The audit log is untouched.
func (s *LinkService) ClearAll(ctx context.Context) error {
	return s.linkRepo.DeleteAll(ctx)
}

// AuditLog returns the disconnection history in insertion order.
func (s *LinkService) AuditLog(ctx context.Context) ([]*models.UnlinkRecord, error) {
	return s.unlinkRepo.FindAll(ctx)
}

// ClearAudit bulk-clears the disconnection history.
func (s *LinkService) ClearAudit(ctx context.Context) error {
	return s.unlinkRepo.DeleteAll(ctx)
}

// Reconcile diffs the stored links against a snapshot of currently active
// numbers. Every linked mobile gets a status entry: mobiles present in the
// snapshot stay linked, mobiles absent from it are reassigned. Each
// reassignment is written to the audit log as it is discovered, so a pass
// that fails midway keeps the unlink records for everything it already
// processed. After its mobiles are partitioned, a record is either updated
// to the retained set or deleted outright when nothing remains — a later
// pass with the same snapshot therefore finds nothing new to unlink for
// pruned records. Mobiles that stay linked but remain inactive are
// re-reported on every pass.
//
// Callers are expected to pass digit-only numbers; anything not found in
// the snapshot is treated as reassigned without further format checks.
func (s *LinkService) Reconcile(ctx context.Context, activeNumbers []string, now time.Time) ([]models.StatusEntry, []*models.UnlinkRecord, error) {
	s.reconcileMu.Lock()
	defer s.reconcileMu.Unlock()

	active := make(map[string]bool, len(activeNumbers))
	for _, number := range activeNumbers {
		active[number] = true
	}

	links, err := s.linkRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	report := []models.StatusEntry{}
	unlinked := []*models.UnlinkRecord{}

	for _, link := range links {
		retained := []string{}

		for _, mobile := range link.Mobiles {
			if active[mobile] {
				report = append(report, models.StatusEntry{
					Aadhaar: link.Aadhaar,
					Mobile:  mobile,
					Status:  models.StatusActive,
				})
				retained = append(retained, mobile)
				continue
			}

			record := &models.UnlinkRecord{
				Aadhaar:        link.Aadhaar,
				Mobile:         mobile,
				Status:         models.StatusReassigned,
				DisconnectedAt: now,
			}
			if err := s.unlinkRepo.Create(ctx, record); err != nil {
				return nil, nil, errors.Wrap(err, "failed to record disconnection")
			}
			report = append(report, models.StatusEntry{
				Aadhaar: link.Aadhaar,
				Mobile:  mobile,
				Status:  models.StatusReassigned,
			})
			unlinked = append(unlinked, record)
		}

		if len(retained) > 0 {
			if err := s.linkRepo.UpdateMobiles(ctx, link.Aadhaar, retained, now); err != nil {
				return nil, nil, err
			}
		} else {
			if _, err := s.linkRepo.Delete(ctx, link.Aadhaar); err != nil {
				return nil, nil, err
			}
		}
	}

	return report, unlinked, nil
}
