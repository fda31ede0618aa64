// Package docstoretest runs the Redis document store against an in-process miniredis.
package docstoretest

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/docstore/redisstore"
	"github.com/GlebRadaev/skillswap/internal/domain"
)

func NewStore(t *testing.T) *redisstore.Store {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.New(client, redisstore.WithPrefix("test:"), redisstore.WithMaxAttempts(10))
}

// SeedUser stores a user account with the given balance and returns it.
func SeedUser(t *testing.T, store docstore.Setter, userID string, balance string) *domain.UserAccount {
	t.Helper()
	user := &domain.UserAccount{
		ID:          userID,
		Email:       userID + "@example.com",
		Name:        userID,
		Skills:      []string{},
		TimeBalance: decimal.RequireFromString(balance),
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, store.Set(context.Background(), docstore.Doc(docstore.Users, userID), user))
	return user
}

// SeedProposal stores a proposal between sender and receiver in the given status.
func SeedProposal(t *testing.T, store docstore.Setter, proposalID, senderID, receiverID string, status domain.ProposalStatus) *domain.Proposal {
	t.Helper()
	now := time.Now().UTC()
	p := &domain.Proposal{
		ID:             proposalID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		SkillOffered:   "guitar",
		SkillRequested: "spanish",
		Message:        "Let's trade!",
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if status == domain.ProposalCompleted {
		p.CompletedAt = &now
	}
	require.NoError(t, store.Set(context.Background(), docstore.Doc(docstore.Proposals, proposalID), p))
	return p
}
