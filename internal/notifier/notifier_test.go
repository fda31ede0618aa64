package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/skillswap/internal/docstore/docstoretest"
	"github.com/GlebRadaev/skillswap/internal/domain"
	notificationrepo "github.com/GlebRadaev/skillswap/internal/repo/notification-repo"
)

type recordingPusher struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (p *recordingPusher) Send(n domain.Notification) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, n)
	return 1
}

func NewMock(t *testing.T) (*Service, *recordingPusher) {
	store := docstoretest.NewStore(t)
	pusher := &recordingPusher{}
	service := New(notificationrepo.New(store), pusher, 2)
	t.Cleanup(service.Close)
	return service, pusher
}

func TestNotify(t *testing.T) {
	service, pusher := NewMock(t)
	ctx := context.Background()

	service.Notify(ctx, "bob", "You have a new proposal", domain.NotificationProposal, "p1")
	service.Notify(ctx, "", "ignored", domain.NotificationChat, "c1")
	service.Close()

	list, err := service.List(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "You have a new proposal", list[0].Message)
	assert.Equal(t, domain.NotificationProposal, list[0].Kind)
	assert.Equal(t, "p1", list[0].LinkID)
	assert.False(t, list[0].IsRead)

	require.Len(t, pusher.sent, 1)
	assert.Equal(t, list[0].ID, pusher.sent[0].ID)
}

func TestNotify_AfterClose(t *testing.T) {
	service, pusher := NewMock(t)
	service.Close()

	assert.NotPanics(t, func() {
		service.Notify(context.Background(), "bob", "late", domain.NotificationChat, "c1")
	})
	assert.Empty(t, pusher.sent)
}

func TestMarkRead(t *testing.T) {
	service, _ := NewMock(t)
	ctx := context.Background()

	service.Notify(ctx, "bob", "hello", domain.NotificationReview, "r1")
	var id string
	require.Eventually(t, func() bool {
		list, err := service.List(ctx, "bob")
		if err != nil || len(list) != 1 {
			return false
		}
		id = list[0].ID
		return true
	}, time.Second, 10*time.Millisecond)

	_, err := service.MarkRead(ctx, "alice", id)
	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, err, &nfErr)

	n, err := service.MarkRead(ctx, "bob", id)
	require.NoError(t, err)
	assert.True(t, n.IsRead)

	_, err = service.MarkRead(ctx, "bob", "missing")
	assert.ErrorAs(t, err, &nfErr)
}
