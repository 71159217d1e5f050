package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/models"
	"github.com/rsjanwa/call-filter-backend/pkg/numlookup"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They preserve insertion order the same way
// the MongoDB implementations do, so order-sensitive behavior (rule
// precedence, reconciliation passes) is exercised realistically.

type fakeRuleRepo struct {
	rules []*models.FilterRule
	err   error
}

func (f *fakeRuleRepo) Create(_ context.Context, rule *models.FilterRule) error {
	if f.err != nil {
		return f.err
	}
	if rule.ID.IsZero() {
		rule.ID = primitive.NewObjectID()
	}
	f.rules = append(f.rules, rule)
	return nil
}

func (f *fakeRuleRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for i, rule := range f.rules {
		if rule.ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRuleRepo) FindAll(_ context.Context) ([]*models.FilterRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]*models.FilterRule{}, f.rules...), nil
}

func (f *fakeRuleRepo) DeleteAll(_ context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.rules = nil
	return nil
}

type fakeListRepo struct {
	lists map[string][]string
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{lists: map[string][]string{}}
}

func (f *fakeListRepo) AddNumber(_ context.Context, listName, number string) error {
	for _, n := range f.lists[listName] {
		if n == number {
			return nil
		}
	}
	f.lists[listName] = append(f.lists[listName], number)
	return nil
}

func (f *fakeListRepo) RemoveNumber(_ context.Context, listName, number string) error {
	numbers := f.lists[listName]
	for i, n := range numbers {
		if n == number {
			f.lists[listName] = append(numbers[:i], numbers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeListRepo) FindNumbers(_ context.Context, listName string) ([]string, error) {
	return append([]string{}, f.lists[listName]...), nil
}

func (f *fakeListRepo) DeleteAll(_ context.Context) error {
	f.lists = map[string][]string{}
	return nil
}

type fakeLookupRepo struct {
	records []*models.LookupRecord
}

func (f *fakeLookupRepo) Create(_ context.Context, record *models.LookupRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeLookupRepo) FindAll(_ context.Context) ([]*models.LookupRecord, error) {
	out := make([]*models.LookupRecord, 0, len(f.records))
	for i := len(f.records) - 1; i >= 0; i-- {
		out = append(out, f.records[i])
	}
	return out, nil
}

func (f *fakeLookupRepo) DeleteAll(_ context.Context) error {
	f.records = nil
	return nil
}

type fakeLinkRepo struct {
	links []*models.AadhaarLink
}

func (f *fakeLinkRepo) Create(_ context.Context, link *models.AadhaarLink) error {
	if link.ID.IsZero() {
		link.ID = primitive.NewObjectID()
	}
	f.links = append(f.links, link)
	return nil
}

func (f *fakeLinkRepo) FindByAadhaar(_ context.Context, aadhaar string) (*models.AadhaarLink, error) {
	for _, link := range f.links {
		if link.Aadhaar == aadhaar {
			return link, nil
		}
	}
	return nil, nil
}

func (f *fakeLinkRepo) FindAll(_ context.Context) ([]*models.AadhaarLink, error) {
	out := make([]*models.AadhaarLink, len(f.links))
	for i, link := range f.links {
		copied := *link
		copied.Mobiles = append([]string{}, link.Mobiles...)
		out[i] = &copied
	}
	return out, nil
}

func (f *fakeLinkRepo) UpdateMobiles(_ context.Context, aadhaar string, mobiles []string, updatedAt time.Time) error {
	for _, link := range f.links {
		if link.Aadhaar == aadhaar {
			link.Mobiles = append([]string{}, mobiles...)
			link.UpdatedAt = updatedAt
			return nil
		}
	}
	return errors.New("link not found")
}

func (f *fakeLinkRepo) Delete(_ context.Context, aadhaar string) (bool, error) {
	for i, link := range f.links {
		if link.Aadhaar == aadhaar {
			f.links = append(f.links[:i], f.links[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLinkRepo) DeleteAll(_ context.Context) error {
	f.links = nil
	return nil
}

type fakeUnlinkRepo struct {
	records []*models.UnlinkRecord
	err     error
}

func (f *fakeUnlinkRepo) Create(_ context.Context, record *models.UnlinkRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeUnlinkRepo) FindAll(_ context.Context) ([]*models.UnlinkRecord, error) {
	return append([]*models.UnlinkRecord{}, f.records...), nil
}

func (f *fakeUnlinkRepo) DeleteAll(_ context.Context) error {
	f.records = nil
	return nil
}

type fakeGateway struct {
	result *numlookup.Result
	err    error
	calls  int
}

func (f *fakeGateway) Validate(_ context.Context, number string) (*numlookup.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := *f.result
	if result.Number == "" {
		result.Number = number
	}
	return &result, nil
}

func strptr(s string) *string {
	return &s
}
