package numlookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidNumber is returned when the API answers but reports the number
// as not valid.
var ErrInvalidNumber = errors.New("number is not valid")

// ErrUnavailable is returned when the API cannot be reached or answers with
// an unexpected status. Callers must treat it as "cannot evaluate", never as
// an allow or block decision.
var ErrUnavailable = errors.New("numlookup api unavailable")

// Client represents a NumLookup API client
type Client struct {
	BaseURL string
	APIKey  string
	MockAPI bool
	client  *http.Client
}

// Result represents a validation response from the NumLookup API. The
// optional fields are pointers so that a field the provider omitted is
// distinguishable from one it returned empty.
type Result struct {
	Number      string  `json:"number"`
	Valid       bool    `json:"valid"`
	CountryCode *string `json:"country_code"`
	CountryName *string `json:"country_name"`
	Location    *string `json:"location"`
	Carrier     *string `json:"carrier"`
	LineType    *string `json:"line_type"`
}

// NewClient creates a new NumLookup API client
func NewClient(baseURL, apiKey string, timeout time.Duration, mockAPI bool) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		MockAPI: mockAPI,
		client:  &http.Client{Timeout: timeout},
	}
}

// Validate looks up a mobile number. A reachable API reporting the number
// as invalid yields ErrInvalidNumber; transport failures, timeouts and
// unexpected statuses yield ErrUnavailable.
func (c *Client) Validate(ctx context.Context, number string) (*Result, error) {
	if c.MockAPI {
		return c.mockValidate(number)
	}

	endpoint := fmt.Sprintf("%s/api/validate/%s?apikey=%s", c.BaseURL, url.PathEscape(number), url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build numlookup request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrUnavailable, "unexpected status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(ErrUnavailable, "failed to decode response: "+err.Error())
	}
	if result.Number == "" {
		result.Number = number
	}
	if !result.Valid {
		return nil, ErrInvalidNumber
	}

	return &result, nil
}

// mockValidate mocks the Validate method for local development. Any number
// of 10 or more digits is considered valid; numbers ending in "000" come
// back without carrier data so the spam path can be exercised.
func (c *Client) mockValidate(number string) (*Result, error) {
	digits := 0
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 {
		return nil, ErrInvalidNumber
	}

	result := &Result{
		Number:      number,
		Valid:       true,
		CountryCode: strPtr("IN"),
		CountryName: strPtr("India"),
	}
	if len(number) >= 3 && number[len(number)-3:] == "000" {
		return result, nil
	}
	result.Location = strPtr("Rajasthan")
	result.Carrier = strPtr("Jio")
	result.LineType = strPtr("mobile")
	return result, nil
}

func strPtr(s string) *string {
	return &s
}
