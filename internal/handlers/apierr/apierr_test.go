package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "Validation",
			err:             domain.NewValidationError("hours must be positive"),
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "hours must be positive",
		},
		{
			name:            "Authorization",
			err:             domain.NewAuthorizationError("only the receiver can accept"),
			expectedCode:    http.StatusForbidden,
			expectedMessage: "only the receiver can accept",
		},
		{
			name:            "Not found",
			err:             domain.NewNotFoundError("proposal", "p1"),
			expectedCode:    http.StatusNotFound,
			expectedMessage: "proposal p1 not found",
		},
		{
			name:            "Invalid state",
			err:             &domain.InvalidStateError{Action: "completed", Current: domain.ProposalPending},
			expectedCode:    http.StatusConflict,
			expectedMessage: "proposal cannot be completed in its current state: pending",
		},
		{
			name:            "Insufficient balance",
			err:             &domain.InsufficientBalanceError{Balance: decimal.NewFromInt(1), Hours: decimal.NewFromInt(2)},
			expectedCode:    http.StatusPaymentRequired,
			expectedMessage: "student does not have enough time balance. Current balance: 1, required hours: 2",
		},
		{
			name:            "Wrapped",
			err:             fmt.Errorf("accept: %w", domain.NewValidationError("bad")),
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "bad",
		},
		{
			name:            "Unknown",
			err:             errors.New("dial tcp: connection refused"),
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := Status(tt.err)
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedMessage, message)
		})
	}
}

func TestRespond(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, domain.NewNotFoundError("chat", "c1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "chat c1 not found", resp.Message)
}
