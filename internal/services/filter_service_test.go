package services

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockAt(hour, minute int) time.Time {
	return time.Date(2025, 6, 15, hour, minute, 0, 0, time.UTC)
}

func TestEvaluateEmptyRuleSetAllows(t *testing.T) {
	svc := NewFilterService(&fakeRuleRepo{})

	allowed, reason, err := svc.Evaluate(context.Background(), FilterInput{CountryCode: "US", Location: "NY"}, clockAt(12, 0))

	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, "no filter rules defined", reason)
}

func TestEvaluateCountryRule(t *testing.T) {
	repo := &fakeRuleRepo{rules: []*models.FilterRule{
		{Name: "NoUS", Countries: []string{"US", "CA"}},
	}}
	svc := NewFilterService(repo)

	allowed, reason, err := svc.Evaluate(context.Background(), FilterInput{CountryCode: "US"}, clockAt(12, 0))
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "blocked by country rule: NoUS", reason)

	allowed, reason, err = svc.Evaluate(context.Background(), FilterInput{CountryCode: "IN"}, clockAt(12, 0))
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, "passed all filter rules", reason)
}

func TestEvaluateLocationRule(t *testing.T) {
	repo := &fakeRuleRepo{rules: []*models.FilterRule{
		{Name: "NoNY", Locations: []string{"New York"}},
	}}
	svc := NewFilterService(repo)

	allowed, reason, err := svc.Evaluate(context.Background(), FilterInput{CountryCode: "US", Location: "New York"}, clockAt(12, 0))
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "blocked by location rule: NoNY", reason)
}

func TestEvaluateFirstMatchWinsAcrossRules(t *testing.T) {
	// Both rules match the record; the earlier rule must decide and name
	// the reason.
	repo := &fakeRuleRepo{rules: []*models.FilterRule{
		{Name: "R1", Countries: []string{"US"}},
		{Name: "R2", Locations: []string{"NY"}},
	}}
	svc := NewFilterService(repo)

	allowed, reason, err := svc.Evaluate(context.Background(), FilterInput{CountryCode: "US", Location: "NY"}, clockAt(12, 0))
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "blocked by country rule: R1", reason)
}

func TestEvaluateTimeRule(t *testing.T) {
	tests := []struct {
		name      string
		timeRange string
		at        time.Time
		blocked   bool
	}{
		{"inside simple range", "09:00-17:00", clockAt(12, 30), true},
		{"start boundary inclusive", "09:00-17:00", clockAt(9, 0), true},
		{"end boundary inclusive", "09:00-17:00", clockAt(17, 0), true},
		{"outside simple range", "09:00-17:00", clockAt(17, 1), false},
		{"overnight range late evening", "22:00-06:00", clockAt(23, 0), true},
		{"overnight range early morning", "22:00-06:00", clockAt(5, 59), true},
		{"overnight range daytime", "22:00-06:00", clockAt(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRuleRepo{rules: []*models.FilterRule{
				{Name: "NightBlock", TimeRanges: []string{tt.timeRange}},
			}}
			svc := NewFilterService(repo)

			allowed, reason, err := svc.Evaluate(context.Background(), FilterInput{CountryCode: "US", Location: "NY"}, tt.at)
			require.NoError(t, err)
			if tt.blocked {
				assert.False(t, allowed)
				assert.Equal(t, "blocked by time rule: NightBlock ("+tt.timeRange+")", reason)
			} else {
				assert.True(t, allowed)
				assert.Equal(t, "passed all filter rules", reason)
			}
		})
	}
}

func TestEvaluateMalformedTimeRangeSkipped(t *testing.T) {
	// The malformed ranges must not fail the rule; the valid range after
	// them still matches.
	repo := &fakeRuleRepo{rules: []*models.FilterRule{
		{Name: "Mixed", TimeRanges: []string{"not-a-range", "25:99-26:00", "10:00-11:00"}},
	}}
	svc := NewFilterService(repo)

	allowed, reason, err := svc.Evaluate(context.Background(), FilterInput{}, clockAt(10, 30))
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "blocked by time rule: Mixed (10:00-11:00)", reason)

	allowed, _, err = svc.Evaluate(context.Background(), FilterInput{}, clockAt(12, 0))
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestEvaluateEmptyCriteriaNeverMatch(t *testing.T) {
	// A rule with no criteria matches nothing, and empty input fields are
	// absent, not wildcards.
	repo := &fakeRuleRepo{rules: []*models.FilterRule{
		{Name: "Empty"},
		{Name: "Countries", Countries: []string{"US"}},
	}}
	svc := NewFilterService(repo)

	allowed, reason, err := svc.Evaluate(context.Background(), FilterInput{}, clockAt(12, 0))
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, "passed all filter rules", reason)
}

func TestEvaluateStoreFailureIsNotADecision(t *testing.T) {
	repo := &fakeRuleRepo{err: errors.New("store down")}
	svc := NewFilterService(repo)

	_, _, err := svc.Evaluate(context.Background(), FilterInput{CountryCode: "US"}, clockAt(12, 0))
	require.Error(t, err)
}
