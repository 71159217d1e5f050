package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/repositories"
)

// FilterInput carries the validated-number fields the rule engine matches
// against. Empty fields never match a rule; they are "absent", not wildcards.
type FilterInput struct {
	CountryCode string
	Location    string
}

// FilterService evaluates filter rules against a validated number.
// List-based decisions (whitelist/blacklist/blocked) are made upstream;
// by the time a number reaches the evaluator the lists have already been
// consulted.
type FilterService struct {
	ruleRepo repositories.RuleRepository
}

// NewFilterService creates a new FilterService
func NewFilterService(ruleRepo repositories.RuleRepository) *FilterService {
	return &FilterService{
		ruleRepo: ruleRepo,
	}
}

// Evaluate applies the stored rules to the input at the given wall-clock
// time and returns the allow/block decision with a reason. Rules are
// checked in insertion order and, within a rule, country before location
// before each time range; the first matching criterion decides and no
// later rule is consulted. An empty rule set allows everything. A
// rule-store read failure is returned as an error, never converted into a
// default decision.
func (s *FilterService) Evaluate(ctx context.Context, input FilterInput, now time.Time) (bool, string, error) {
	rules, err := s.ruleRepo.FindAll(ctx)
	if err != nil {
		return false, "", errors.Wrap(err, "failed to load filter rules")
	}

	if len(rules) == 0 {
		return true, "no filter rules defined", nil
	}

	minuteOfDay := now.Hour()*60 + now.Minute()

	for _, rule := range rules {
		if contains(rule.Countries, input.CountryCode) {
			return false, fmt.Sprintf("blocked by country rule: %s", rule.Name), nil
		}

		if contains(rule.Locations, input.Location) {
			return false, fmt.Sprintf("blocked by location rule: %s", rule.Name), nil
		}

		for _, timeRange := range rule.TimeRanges {
			start, end, err := parseTimeRange(timeRange)
			if err != nil {
				// Malformed ranges are skipped, not fatal.
				continue
			}
			if inTimeRange(minuteOfDay, start, end) {
				return false, fmt.Sprintf("blocked by time rule: %s (%s)", rule.Name, timeRange), nil
			}
		}
	}

	return true, "passed all filter rules", nil
}

// contains reports whether values has an exact, non-empty match for v.
func contains(values []string, v string) bool {
	if v == "" {
		return false
	}
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// parseTimeRange parses "HH:MM-HH:MM" into minutes of the day.
func parseTimeRange(timeRange string) (int, int, error) {
	parts := strings.Split(timeRange, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time range %q", timeRange)
	}

	start, err := parseMinuteOfDay(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err := parseMinuteOfDay(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseMinuteOfDay(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// inTimeRange reports whether the minute of day falls within [start, end]
// inclusive. A range whose start is after its end wraps past midnight, so
// "22:00-06:00" covers both late evening and early morning.
func inTimeRange(minuteOfDay, start, end int) bool {
	if start <= end {
		return start <= minuteOfDay && minuteOfDay <= end
	}
	return minuteOfDay >= start || minuteOfDay <= end
}
