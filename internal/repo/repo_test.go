package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/skillswap/internal/docstore/docstoretest"
)

func TestNew(t *testing.T) {
	store := docstoretest.NewStore(t)
	repo := New(store)

	assert.Equal(t, store, repo.Store)
	assert.NotNil(t, repo.Users)
	assert.NotNil(t, repo.Proposals)
	assert.NotNil(t, repo.Chats)
	assert.NotNil(t, repo.Badges)
	assert.NotNil(t, repo.Reviews)
	assert.NotNil(t, repo.Notifications)
}
