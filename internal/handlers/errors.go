package handlers

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/rsjanwa/call-filter-backend/internal/services"
	"github.com/rsjanwa/call-filter-backend/pkg/numlookup"
)

// statusForError maps the service error taxonomy onto HTTP statuses.
// Malformed input is the caller's fault; an unreachable NumLookup API is a
// bad gateway; everything else is a store failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, numlookup.ErrInvalidNumber):
		return http.StatusUnprocessableEntity
	case errors.Is(err, numlookup.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
