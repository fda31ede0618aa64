package chatrepo

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

func NewMock(t *testing.T) (*Repository, docstore.Store) {
	store := docstoretest.NewStore(t)
	return New(store), store
}

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRepository_ChatLifecycle(t *testing.T) {
	repo, store := NewMock(t)
	ctx := context.Background()

	chat := &domain.Chat{ID: "p1", Participants: []string{"a", "b"}, CreatedAt: base, UpdatedAt: base}
	err := store.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		if err := repo.CreateTx(ctx, tx, chat); err != nil {
			return err
		}
		return repo.AddMessageTx(ctx, tx, chat.ID, &domain.Message{ID: "m1", SenderID: "a", Text: "hello", CreatedAt: base})
	})
	require.NoError(t, err)

	err = store.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		c, err := repo.GetTx(ctx, tx, "p1")
		if err != nil {
			return err
		}
		c.UpdatedAt = base.Add(time.Minute)
		c.LastMessage = &domain.LastMessage{Text: "again", SenderID: "b", CreatedAt: c.UpdatedAt}
		if err := repo.UpdateTx(ctx, tx, c); err != nil {
			return err
		}
		return repo.AddMessageTx(ctx, tx, c.ID, &domain.Message{ID: "m2", SenderID: "b", Text: "again", CreatedAt: c.UpdatedAt})
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got.LastMessage)
	assert.Equal(t, "again", got.LastMessage.Text)

	messages, err := repo.ListMessages(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "m2", messages[1].ID)

	missing, err := repo.Get(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_CreateInvalidChat(t *testing.T) {
	repo, store := NewMock(t)
	err := store.RunTransaction(context.Background(), func(ctx context.Context, tx docstore.Tx) error {
		return repo.CreateTx(ctx, tx, &domain.Chat{ID: "p1", Participants: []string{"a"}})
	})
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestRepository_ListByParticipant(t *testing.T) {
	repo, store := NewMock(t)
	ctx := context.Background()
	for _, c := range []domain.Chat{
		{ID: "c1", Participants: []string{"a", "b"}, UpdatedAt: base},
		{ID: "c2", Participants: []string{"c", "a"}, UpdatedAt: base.Add(time.Hour)},
		{ID: "c3", Participants: []string{"b", "c"}, UpdatedAt: base.Add(2 * time.Hour)},
	} {
		require.NoError(t, store.Set(ctx, ref(c.ID), c))
	}

	tests := []struct {
		name   string
		userID string
		ids    []string
	}{
		{name: "Two chats", userID: "a", ids: []string{"c2", "c1"}},
		{name: "Other user", userID: "b", ids: []string{"c3", "c1"}},
		{name: "No chats", userID: "z", ids: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chats, err := repo.ListByParticipant(ctx, tt.userID)
			require.NoError(t, err)
			ids := []string{}
			for _, c := range chats {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestRepository_MeetingPoints(t *testing.T) {
	repo, store := NewMock(t)
	ctx := context.Background()

	err := store.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		if err := repo.AddMeetingPointTx(ctx, tx, &domain.MeetingPoint{
			ID: "mp1", ChatID: "c1", SenderID: "a", Location: "Library",
			Status: domain.MeetingPointPending, CreatedAt: base,
		}); err != nil {
			return err
		}
		return repo.AddMeetingPointTx(ctx, tx, &domain.MeetingPoint{
			ID: "mp2", ChatID: "c1", SenderID: "b", Location: "Cafe",
			Status: domain.MeetingPointPending, CreatedAt: base.Add(time.Hour),
		})
	})
	require.NoError(t, err)

	err = store.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		mp, err := repo.GetMeetingPointTx(ctx, tx, "c1", "mp1")
		if err != nil {
			return err
		}
		mp.Status = domain.MeetingPointAccepted
		return repo.UpdateMeetingPointTx(ctx, tx, mp)
	})
	require.NoError(t, err)

	points, err := repo.ListMeetingPoints(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "mp2", points[0].ID)
	assert.Equal(t, domain.MeetingPointAccepted, points[1].Status)

	err = store.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		mp, err := repo.GetMeetingPointTx(ctx, tx, "c1", "mp404")
		assert.Nil(t, mp)
		return err
	})
	assert.NoError(t, err)
}
