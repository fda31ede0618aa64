package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/docstore/docstoretest"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/repo"
	"github.com/GlebRadaev/skillswap/internal/service/proposalservice"
	"github.com/GlebRadaev/skillswap/internal/service/userservice"
)

func testConfig() *config.Config {
	return &config.Config{
		InitialBalance:  decimal.NewFromInt(5),
		FirstTradeAt:    1,
		MasterTeacherAt: 10,
		NotifierWorkers: 2,
	}
}

func TestNew(t *testing.T) {
	services := New(repo.New(docstoretest.NewStore(t)), testConfig())
	defer services.Close()

	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.BadgeService)
	assert.NotNil(t, services.ReviewService)
	assert.NotNil(t, services.ProposalService)
	assert.NotNil(t, services.TradeService)
	assert.NotNil(t, services.ChatService)
	assert.NotNil(t, services.NotificationService)
	assert.NotNil(t, services.Hub)
}

// TestTradeFlow runs a whole trade through the wired services.
func TestTradeFlow(t *testing.T) {
	repos := repo.New(docstoretest.NewStore(t))
	services := New(repos, testConfig())
	ctx := context.Background()

	for _, id := range []string{"alice", "bob"} {
		_, err := services.UserService.CreateProfile(ctx, userservice.CreateInput{
			UserID: id, Email: id + "@example.com", Name: id,
		})
		require.NoError(t, err)
	}

	p, err := services.ProposalService.Create(ctx, proposalservice.CreateInput{
		SenderID: "alice", ReceiverID: "bob", SkillOffered: "guitar", SkillRequested: "spanish", Message: "Let's trade!",
	})
	require.NoError(t, err)
	_, err = services.ProposalService.Accept(ctx, p.ID, "bob")
	require.NoError(t, err)

	receipt, err := services.TradeService.CompleteProposal(ctx, p.ID, "alice", "bob", 2)
	require.NoError(t, err)
	assert.True(t, receipt.StudentBalance.Equal(decimal.NewFromInt(3)))
	assert.True(t, receipt.TeacherBalance.Equal(decimal.NewFromInt(7)))

	_, err = services.ReviewService.CreateReview(ctx, p.ID, "alice", "bob", 5, "Great teacher")
	require.NoError(t, err)
	rating, err := services.ReviewService.AverageRating(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 5.0, rating)

	badges, err := services.BadgeService.ListEarned(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, domain.BadgeFirstTrade, badges[0].BadgeID)

	services.Close()
	// bob: new proposal, completion, review. alice: accepted, completion.
	list, err := services.NotificationService.List(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, list, 3)
	list, err = services.NotificationService.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
