package proposalservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/docstore/docstoretest"
	"github.com/GlebRadaev/skillswap/internal/domain"
	chatrepo "github.com/GlebRadaev/skillswap/internal/repo/chat-repo"
	proposalrepo "github.com/GlebRadaev/skillswap/internal/repo/proposal-repo"
	userrepo "github.com/GlebRadaev/skillswap/internal/repo/user-repo"
)

type fixture struct {
	service   *Service
	store     docstore.Store
	notifier  *MockNotifier
	proposals *proposalrepo.Repository
	chats     *chatrepo.Repository
}

func NewMock(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	store := docstoretest.NewStore(t)
	notifier := NewMockNotifier(ctrl)
	proposals := proposalrepo.New(store)
	chats := chatrepo.New(store)
	service := New(store, userrepo.New(store), proposals, chats, notifier)

	docstoretest.SeedUser(t, store, "alice", "5")
	docstoretest.SeedUser(t, store, "bob", "2")
	docstoretest.SeedUser(t, store, "carol", "0")

	return &fixture{service: service, store: store, notifier: notifier, proposals: proposals, chats: chats}
}

func (f *fixture) status(t *testing.T, proposalID string) domain.ProposalStatus {
	t.Helper()
	p, err := f.proposals.Get(context.Background(), proposalID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Status
}

func TestCreate(t *testing.T) {
	f := NewMock(t)
	valid := CreateInput{SenderID: "alice", ReceiverID: "bob", SkillOffered: "guitar", SkillRequested: "spanish", Message: "Hi Bob"}

	tests := []struct {
		name        string
		input       func() CreateInput
		prepareMock func()
		expectedErr any
	}{
		{
			name:  "Pending proposal is created",
			input: func() CreateInput { return valid },
			prepareMock: func() {
				f.notifier.EXPECT().Notify(gomock.Any(), "bob", gomock.Any(), domain.NotificationProposal, gomock.Any())
			},
		},
		{
			name: "Proposal to yourself",
			input: func() CreateInput {
				in := valid
				in.ReceiverID = "alice"
				return in
			},
			expectedErr: &domain.ValidationError{},
		},
		{
			name: "Blank skill",
			input: func() CreateInput {
				in := valid
				in.SkillOffered = "   "
				return in
			},
			expectedErr: &domain.ValidationError{},
		},
		{
			name: "Empty message",
			input: func() CreateInput {
				in := valid
				in.Message = ""
				return in
			},
			expectedErr: &domain.ValidationError{},
		},
		{
			name: "Unknown receiver",
			input: func() CreateInput {
				in := valid
				in.ReceiverID = "dave"
				return in
			},
			expectedErr: &domain.NotFoundError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			p, err := f.service.Create(context.Background(), tt.input())
			switch tt.expectedErr.(type) {
			case *domain.ValidationError:
				var target *domain.ValidationError
				assert.ErrorAs(t, err, &target)
				return
			case *domain.NotFoundError:
				var target *domain.NotFoundError
				assert.ErrorAs(t, err, &target)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.ProposalPending, p.Status)
			assert.False(t, p.CreatedAt.IsZero())
			assert.Equal(t, domain.ProposalPending, f.status(t, p.ID))
		})
	}
}

func TestAccept(t *testing.T) {
	t.Run("Receiver accepts and a chat is opened", func(t *testing.T) {
		f := NewMock(t)
		docstoretest.SeedProposal(t, f.store, "p1", "alice", "bob", domain.ProposalPending)
		f.notifier.EXPECT().Notify(gomock.Any(), "alice", gomock.Any(), domain.NotificationProposal, "p1")

		p, err := f.service.Accept(context.Background(), "p1", "bob")
		require.NoError(t, err)
		assert.Equal(t, domain.ProposalAccepted, p.Status)
		assert.Equal(t, "p1", p.ChatID)

		stored, err := f.proposals.Get(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, domain.ProposalAccepted, stored.Status)
		assert.Equal(t, "p1", stored.ChatID)

		chat, err := f.chats.Get(context.Background(), "p1")
		require.NoError(t, err)
		require.NotNil(t, chat)
		assert.Equal(t, []string{"alice", "bob"}, chat.Participants)
		require.NotNil(t, chat.LastMessage)
		assert.Equal(t, "Let's trade!", chat.LastMessage.Text)
		assert.Equal(t, "alice", chat.LastMessage.SenderID)

		messages, err := f.chats.ListMessages(context.Background(), "p1")
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "Let's trade!", messages[0].Text)
	})

	t.Run("Non receiver cannot accept", func(t *testing.T) {
		f := NewMock(t)
		docstoretest.SeedProposal(t, f.store, "p1", "alice", "bob", domain.ProposalPending)

		for _, actor := range []string{"alice", "carol"} {
			_, err := f.service.Accept(context.Background(), "p1", actor)
			var authErr *domain.AuthorizationError
			assert.ErrorAs(t, err, &authErr)
		}

		assert.Equal(t, domain.ProposalPending, f.status(t, "p1"))
		chat, err := f.chats.Get(context.Background(), "p1")
		require.NoError(t, err)
		assert.Nil(t, chat)
	})

	t.Run("Only pending proposals can be accepted", func(t *testing.T) {
		f := NewMock(t)
		docstoretest.SeedProposal(t, f.store, "p1", "alice", "bob", domain.ProposalRejected)

		_, err := f.service.Accept(context.Background(), "p1", "bob")
		var stateErr *domain.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Contains(t, err.Error(), "rejected")

		chat, err := f.chats.Get(context.Background(), "p1")
		require.NoError(t, err)
		assert.Nil(t, chat)
	})

	t.Run("Missing proposal", func(t *testing.T) {
		f := NewMock(t)
		_, err := f.service.Accept(context.Background(), "p404", "bob")
		var nfErr *domain.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestCancelAndReject(t *testing.T) {
	tests := []struct {
		name           string
		status         domain.ProposalStatus
		action         func(s *Service) error
		prepareMock    func(n *MockNotifier)
		expectedErr    any
		expectedStatus domain.ProposalStatus
	}{
		{
			name:   "Sender cancels pending proposal",
			status: domain.ProposalPending,
			action: func(s *Service) error {
				_, err := s.Cancel(context.Background(), "p1", "alice")
				return err
			},
			expectedStatus: domain.ProposalCanceled,
		},
		{
			name:   "Receiver cannot cancel",
			status: domain.ProposalPending,
			action: func(s *Service) error {
				_, err := s.Cancel(context.Background(), "p1", "bob")
				return err
			},
			expectedErr:    &domain.AuthorizationError{},
			expectedStatus: domain.ProposalPending,
		},
		{
			name:   "Accepted proposal cannot be canceled",
			status: domain.ProposalAccepted,
			action: func(s *Service) error {
				_, err := s.Cancel(context.Background(), "p1", "alice")
				return err
			},
			expectedErr:    &domain.InvalidStateError{},
			expectedStatus: domain.ProposalAccepted,
		},
		{
			name:   "Receiver rejects pending proposal",
			status: domain.ProposalPending,
			action: func(s *Service) error {
				_, err := s.Reject(context.Background(), "p1", "bob")
				return err
			},
			prepareMock: func(n *MockNotifier) {
				n.EXPECT().Notify(gomock.Any(), "alice", gomock.Any(), domain.NotificationProposal, "p1")
			},
			expectedStatus: domain.ProposalRejected,
		},
		{
			name:   "Sender cannot reject",
			status: domain.ProposalPending,
			action: func(s *Service) error {
				_, err := s.Reject(context.Background(), "p1", "alice")
				return err
			},
			expectedErr:    &domain.AuthorizationError{},
			expectedStatus: domain.ProposalPending,
		},
		{
			name:   "Canceled proposal cannot be rejected",
			status: domain.ProposalCanceled,
			action: func(s *Service) error {
				_, err := s.Reject(context.Background(), "p1", "bob")
				return err
			},
			expectedErr:    &domain.InvalidStateError{},
			expectedStatus: domain.ProposalCanceled,
		},
		{
			name:   "Participant schedules accepted proposal",
			status: domain.ProposalAccepted,
			action: func(s *Service) error {
				_, err := s.Schedule(context.Background(), "p1", "bob")
				return err
			},
			prepareMock: func(n *MockNotifier) {
				n.EXPECT().Notify(gomock.Any(), "alice", gomock.Any(), domain.NotificationProposal, "p1")
			},
			expectedStatus: domain.ProposalScheduled,
		},
		{
			name:   "Outsider cannot schedule",
			status: domain.ProposalAccepted,
			action: func(s *Service) error {
				_, err := s.Schedule(context.Background(), "p1", "carol")
				return err
			},
			expectedErr:    &domain.AuthorizationError{},
			expectedStatus: domain.ProposalAccepted,
		},
		{
			name:   "Pending proposal cannot be scheduled",
			status: domain.ProposalPending,
			action: func(s *Service) error {
				_, err := s.Schedule(context.Background(), "p1", "alice")
				return err
			},
			expectedErr:    &domain.InvalidStateError{},
			expectedStatus: domain.ProposalPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewMock(t)
			docstoretest.SeedProposal(t, f.store, "p1", "alice", "bob", tt.status)
			if tt.prepareMock != nil {
				tt.prepareMock(f.notifier)
			}

			err := tt.action(f.service)
			switch tt.expectedErr.(type) {
			case *domain.AuthorizationError:
				var target *domain.AuthorizationError
				assert.ErrorAs(t, err, &target)
			case *domain.InvalidStateError:
				var target *domain.InvalidStateError
				assert.ErrorAs(t, err, &target)
				assert.Contains(t, err.Error(), string(tt.status))
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedStatus, f.status(t, "p1"))
		})
	}
}

func TestStatusesOnlyMoveForward(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	for _, terminal := range []domain.ProposalStatus{domain.ProposalRejected, domain.ProposalCanceled, domain.ProposalCompleted} {
		docstoretest.SeedProposal(t, f.store, "p-"+string(terminal), "alice", "bob", terminal)
		id := "p-" + string(terminal)

		_, errAccept := f.service.Accept(ctx, id, "bob")
		_, errReject := f.service.Reject(ctx, id, "bob")
		_, errCancel := f.service.Cancel(ctx, id, "alice")
		_, errSchedule := f.service.Schedule(ctx, id, "alice")
		for _, err := range []error{errAccept, errReject, errCancel, errSchedule} {
			var stateErr *domain.InvalidStateError
			assert.True(t, errors.As(err, &stateErr), "terminal %s: %v", terminal, err)
		}
		assert.Equal(t, terminal, f.status(t, id))
	}
}

func TestGetAndLists(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()
	docstoretest.SeedProposal(t, f.store, "p1", "alice", "bob", domain.ProposalPending)
	docstoretest.SeedProposal(t, f.store, "p2", "carol", "bob", domain.ProposalScheduled)
	docstoretest.SeedProposal(t, f.store, "p3", "alice", "bob", domain.ProposalRejected)
	docstoretest.SeedProposal(t, f.store, "p4", "alice", "carol", domain.ProposalCompleted)

	p, err := f.service.Get(ctx, "p1", "bob")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = f.service.Get(ctx, "p1", "carol")
	var authErr *domain.AuthorizationError
	assert.ErrorAs(t, err, &authErr)

	_, err = f.service.Get(ctx, "p404", "bob")
	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, err, &nfErr)

	received, err := f.service.ListReceived(ctx, "bob")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids(received))

	sent, err := f.service.ListSent(ctx, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p3", "p4"}, ids(sent))
}

func ids(proposals []domain.Proposal) []string {
	out := make([]string, len(proposals))
	for i, p := range proposals {
		out[i] = p.ID
	}
	return out
}
