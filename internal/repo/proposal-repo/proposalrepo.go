package proposalrepo

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/domain"
)

type Repository struct {
	store docstore.Store
}

func New(store docstore.Store) *Repository {
	return &Repository{
		store: store,
	}
}

func ref(proposalID string) docstore.Ref {
	return docstore.Doc(docstore.Proposals, proposalID)
}

// Get returns nil, nil when the proposal does not exist.
func (repo *Repository) Get(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	return repo.GetTx(ctx, repo.store, proposalID)
}

func (repo *Repository) GetTx(ctx context.Context, tx docstore.Getter, proposalID string) (*domain.Proposal, error) {
	proposal, err := docstore.Load[domain.Proposal](ctx, tx, ref(proposalID))
	if err != nil {
		zap.L().Error("can't load proposal", zap.String("proposal_id", proposalID), zap.Error(err))
		return nil, err
	}
	if proposal == nil {
		return nil, nil
	}
	if err := proposal.Validate(); err != nil {
		zap.L().Error("stored proposal is invalid", zap.String("proposal_id", proposalID), zap.Error(err))
		return nil, err
	}
	return proposal, nil
}

func (repo *Repository) CreateTx(ctx context.Context, tx docstore.Tx, proposal *domain.Proposal) error {
	if err := proposal.Validate(); err != nil {
		return err
	}
	return tx.Set(ctx, ref(proposal.ID), proposal)
}

func (repo *Repository) UpdateTx(ctx context.Context, tx docstore.Tx, proposal *domain.Proposal) error {
	if err := proposal.Validate(); err != nil {
		return err
	}
	return tx.Update(ctx, ref(proposal.ID), proposal)
}

// ListByReceiver returns proposals addressed to userID in one of statuses, newest first.
func (repo *Repository) ListByReceiver(ctx context.Context, userID string, statuses ...domain.ProposalStatus) ([]domain.Proposal, error) {
	filters := []docstore.Filter{docstore.Where("receiverId", docstore.OpEqual, userID)}
	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		filters = append(filters, docstore.Where("status", docstore.OpIn, values...))
	}
	return repo.list(ctx, filters...)
}

// ListBySender returns every proposal userID sent, newest first.
func (repo *Repository) ListBySender(ctx context.Context, userID string) ([]domain.Proposal, error) {
	return repo.list(ctx, docstore.Where("senderId", docstore.OpEqual, userID))
}

func (repo *Repository) list(ctx context.Context, filters ...docstore.Filter) ([]domain.Proposal, error) {
	snaps, err := repo.store.Query(ctx, docstore.Proposals, filters...)
	if err != nil {
		zap.L().Error("can't query proposals", zap.Error(err))
		return nil, err
	}
	proposals, err := docstore.DecodeAll[domain.Proposal](snaps)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})
	return proposals, nil
}
