package reviewrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/docstore/docstoretest"
	"github.com/GlebRadaev/skillswap/internal/domain"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRepository(t *testing.T) {
	store := docstoretest.NewStore(t)
	repo := New(store)
	ctx := context.Background()

	reviews := []*domain.Review{
		{ID: "r1", ProposalID: "p1", ReviewerID: "a", RevieweeID: "b", Rating: 5, Comment: "great", CreatedAt: base},
		{ID: "r2", ProposalID: "p2", ReviewerID: "c", RevieweeID: "b", Rating: 3, Comment: "ok", CreatedAt: base.Add(time.Hour)},
		{ID: "r3", ProposalID: "p1", ReviewerID: "b", RevieweeID: "a", Rating: 4, Comment: "good", CreatedAt: base},
	}
	for _, r := range reviews {
		err := store.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
			return repo.CreateTx(ctx, tx, r)
		})
		require.NoError(t, err)
	}

	list, err := repo.ListByReviewee(ctx, "b")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[0].ID)
	assert.Equal(t, "r1", list[1].ID)

	err = store.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		got, err := repo.GetTx(ctx, tx, "r3")
		require.NotNil(t, got)
		assert.Equal(t, 4, got.Rating)
		return err
	})
	require.NoError(t, err)

	err = store.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		return repo.CreateTx(ctx, tx, &domain.Review{ID: "r4", ReviewerID: "a", RevieweeID: "b", Rating: 9, Comment: "x"})
	})
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
