package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

func NewMock(t *testing.T) (*ReviewHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestCreateReview(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(s *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created",
			body: `{"proposalId":"p1","revieweeId":"bob","rating":5,"comment":"Great teacher"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().CreateReview(gomock.Any(), "p1", "alice", "bob", 5, "Great teacher").
					Return(&domain.Review{ID: "p1_alice", ProposalID: "p1", ReviewerID: "alice", RevieweeID: "bob", Rating: 5}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"rating":"five"}`,
			prepareMock:   func(s *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Proposal not completed",
			body: `{"proposalId":"p1","revieweeId":"bob","rating":4,"comment":"ok"}`,
			prepareMock: func(s *MockService) {
				s.EXPECT().CreateReview(gomock.Any(), "p1", "alice", "bob", 4, "ok").
					Return(nil, &domain.InvalidStateError{Action: "reviewed", Current: domain.ProposalAccepted})
			},
			expectedCode:  http.StatusConflict,
			expectedError: "proposal cannot be reviewed in its current state: accepted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)
			r := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(tt.body))
			r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, "alice"))
			w := httptest.NewRecorder()

			handler.CreateReview(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
