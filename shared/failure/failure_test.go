package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"sportshub/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "venue conflict",
			failure: failure.VenueConflictError,
			code:    http.StatusBadRequest,
			message: "Venue already booked at this time",
		},
		{
			name:    "invalid range",
			failure: failure.InvalidRangeError,
			code:    http.StatusBadRequest,
			message: "End time must be after start time",
		},
		{
			name:    "ownership",
			failure: failure.OwnershipError,
			code:    http.StatusForbidden,
			message: "Unauthorized access",
		},
		{
			name:    "forbidden",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.Equal(t, tt.message, tt.failure.Error())
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"bad request", failure.BadRequest(errors.New("bad input")), http.StatusBadRequest, "bad input"},
		{"bad request from string", failure.BadRequestFromString("missing"), http.StatusBadRequest, "missing"},
		{"immutable", failure.ImmutableState("Approved schedules cannot be removed"), http.StatusBadRequest, "Approved schedules cannot be removed"},
		{"unauthorized", failure.Unauthorized("token expired"), http.StatusUnauthorized, "token expired"},
		{"internal", failure.InternalError(errors.New("boom")), http.StatusInternalServerError, "boom"},
		{"unimplemented", failure.Unimplemented("Export"), http.StatusNotImplemented, "Export"},
		{"not found", failure.NotFound("booking not found"), http.StatusNotFound, "booking not found"},
		{"conflict", failure.Conflict("venue name already exists"), http.StatusConflict, "venue name already exists"},
		{"forbidden", failure.Forbidden("nope"), http.StatusForbidden, "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}

	assert.Nil(t, failure.BadRequest(nil))
	assert.Nil(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to approve booking: %w", failure.VenueConflictError)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(wrapped))
	assert.True(t, errors.Is(wrapped, failure.VenueConflictError))
	assert.True(t, failure.IsFailure(wrapped))
	assert.False(t, failure.IsFailure(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}
