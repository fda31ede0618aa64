package reviewservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/docstore/docstoretest"
	"github.com/GlebRadaev/skillswap/internal/domain"
	proposalrepo "github.com/GlebRadaev/skillswap/internal/repo/proposal-repo"
	reviewrepo "github.com/GlebRadaev/skillswap/internal/repo/review-repo"
)

func NewMock(t *testing.T) (*Service, docstore.Store, *MockNotifier) {
	ctrl := gomock.NewController(t)
	store := docstoretest.NewStore(t)
	notifier := NewMockNotifier(ctrl)
	docstoretest.SeedProposal(t, store, "done", "alice", "bob", domain.ProposalCompleted)
	docstoretest.SeedProposal(t, store, "open", "alice", "bob", domain.ProposalAccepted)
	return New(store, reviewrepo.New(store), proposalrepo.New(store), notifier), store, notifier
}

func TestCreateReview(t *testing.T) {
	tests := []struct {
		name        string
		proposalID  string
		reviewerID  string
		revieweeID  string
		rating      int
		comment     string
		expectedErr any
	}{
		{name: "Valid review", proposalID: "done", reviewerID: "alice", revieweeID: "bob", rating: 5, comment: "Great teacher"},
		{name: "Rating too low", proposalID: "done", reviewerID: "alice", revieweeID: "bob", rating: 0, comment: "x", expectedErr: &domain.ValidationError{}},
		{name: "Rating too high", proposalID: "done", reviewerID: "alice", revieweeID: "bob", rating: 6, comment: "x", expectedErr: &domain.ValidationError{}},
		{name: "Blank comment", proposalID: "done", reviewerID: "alice", revieweeID: "bob", rating: 4, comment: "  ", expectedErr: &domain.ValidationError{}},
		{name: "Trade not completed", proposalID: "open", reviewerID: "alice", revieweeID: "bob", rating: 4, comment: "ok", expectedErr: &domain.InvalidStateError{}},
		{name: "Outsider", proposalID: "done", reviewerID: "carol", revieweeID: "bob", rating: 4, comment: "ok", expectedErr: &domain.AuthorizationError{}},
		{name: "Unknown proposal", proposalID: "nope", reviewerID: "alice", revieweeID: "bob", rating: 4, comment: "ok", expectedErr: &domain.NotFoundError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, notifier := NewMock(t)
			if tt.expectedErr == nil {
				notifier.EXPECT().Notify(gomock.Any(), tt.revieweeID, gomock.Any(), domain.NotificationReview, tt.proposalID)
			}

			review, err := service.CreateReview(context.Background(), tt.proposalID, tt.reviewerID, tt.revieweeID, tt.rating, tt.comment)
			switch tt.expectedErr.(type) {
			case *domain.ValidationError:
				var target *domain.ValidationError
				assert.ErrorAs(t, err, &target)
			case *domain.InvalidStateError:
				var target *domain.InvalidStateError
				assert.ErrorAs(t, err, &target)
			case *domain.AuthorizationError:
				var target *domain.AuthorizationError
				assert.ErrorAs(t, err, &target)
			case *domain.NotFoundError:
				var target *domain.NotFoundError
				assert.ErrorAs(t, err, &target)
			default:
				require.NoError(t, err)
				assert.Equal(t, "done_alice", review.ID)
			}
		})
	}
}

func TestCreateReview_OncePerReviewer(t *testing.T) {
	service, _, notifier := NewMock(t)
	ctx := context.Background()
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	_, err := service.CreateReview(ctx, "done", "alice", "bob", 5, "great")
	require.NoError(t, err)
	_, err = service.CreateReview(ctx, "done", "alice", "bob", 1, "changed my mind")
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = service.CreateReview(ctx, "done", "bob", "alice", 4, "nice")
	require.NoError(t, err)
}

func TestListAndAverage(t *testing.T) {
	service, store, notifier := NewMock(t)
	ctx := context.Background()
	docstoretest.SeedProposal(t, store, "done2", "carol", "bob", domain.ProposalCompleted)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	avg, err := service.AverageRating(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	_, err = service.CreateReview(ctx, "done", "alice", "bob", 5, "great")
	require.NoError(t, err)
	_, err = service.CreateReview(ctx, "done2", "carol", "bob", 2, "late")
	require.NoError(t, err)

	reviews, err := service.ListForUser(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	avg, err = service.AverageRating(ctx, "bob")
	require.NoError(t, err)
	assert.InDelta(t, 3.5, avg, 0.0001)
}
