package numlookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, "test-key", 2*time.Second, false)
	return client, server
}

func TestValidateParsesFullResponse(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"number": "+14155550100",
			"valid": true,
			"country_code": "US",
			"country_name": "United States",
			"location": "California",
			"carrier": "Verizon",
			"line_type": "mobile"
		}`))
	})
	defer server.Close()

	result, err := client.Validate(context.Background(), "+14155550100")
	require.NoError(t, err)

	assert.Equal(t, "+14155550100", result.Number)
	assert.True(t, result.Valid)
	require.NotNil(t, result.Carrier)
	assert.Equal(t, "Verizon", *result.Carrier)
	require.NotNil(t, result.Location)
	assert.Equal(t, "California", *result.Location)
}

func TestValidateMissingFieldsAreAbsent(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"valid": true, "country_code": "US"}`))
	})
	defer server.Close()

	result, err := client.Validate(context.Background(), "+14155550100")
	require.NoError(t, err)

	// Omitted fields stay nil rather than becoming empty strings the
	// caller cannot distinguish from real data.
	assert.Nil(t, result.Location)
	assert.Nil(t, result.Carrier)
	assert.Nil(t, result.LineType)
	assert.Nil(t, result.CountryName)
	// The requested number backfills a response without one.
	assert.Equal(t, "+14155550100", result.Number)
}

func TestValidateInvalidNumber(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"valid": false}`))
	})
	defer server.Close()

	_, err := client.Validate(context.Background(), "12345")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestValidateUnexpectedStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer server.Close()

	_, err := client.Validate(context.Background(), "+14155550100")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestValidateMalformedBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	defer server.Close()

	_, err := client.Validate(context.Background(), "+14155550100")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestValidateTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, "test-key", time.Second, false)
	_, err := client.Validate(context.Background(), "+14155550100")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestValidateContextCancellation(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"valid": true}`))
	})
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Validate(ctx, "+14155550100")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable) || errors.Is(err, context.DeadlineExceeded))
}

func TestMockValidate(t *testing.T) {
	client := NewClient("", "", time.Second, true)

	result, err := client.Validate(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.NotNil(t, result.Carrier)

	// Numbers ending in 000 come back without carrier data.
	result, err = client.Validate(context.Background(), "9876543000")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Nil(t, result.Carrier)

	_, err = client.Validate(context.Background(), "12345")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}
