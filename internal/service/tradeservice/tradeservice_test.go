package tradeservice

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/docstore/docstoretest"
	"github.com/GlebRadaev/skillswap/internal/domain"
	badgerepo "github.com/GlebRadaev/skillswap/internal/repo/badge-repo"
	proposalrepo "github.com/GlebRadaev/skillswap/internal/repo/proposal-repo"
	userrepo "github.com/GlebRadaev/skillswap/internal/repo/user-repo"
	"github.com/GlebRadaev/skillswap/internal/service/badgeservice"
)

type fixture struct {
	service   *Service
	store     docstore.Store
	notifier  *MockNotifier
	users     *userrepo.Repository
	proposals *proposalrepo.Repository
	badges    *badgeservice.Service
}

func NewMock(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	store := docstoretest.NewStore(t)
	notifier := NewMockNotifier(ctrl)
	users := userrepo.New(store)
	proposals := proposalrepo.New(store)
	badges := badgeservice.New(badgerepo.New(store), badgeservice.DefaultThresholds)
	return &fixture{
		service:   New(store, users, proposals, badges, notifier),
		store:     store,
		notifier:  notifier,
		users:     users,
		proposals: proposals,
		badges:    badges,
	}
}

func (f *fixture) user(t *testing.T, id string) *domain.UserAccount {
	t.Helper()
	u, err := f.users.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

func (f *fixture) proposal(t *testing.T, id string) *domain.Proposal {
	t.Helper()
	p, err := f.proposals.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func (f *fixture) earned(t *testing.T, userID string) []string {
	t.Helper()
	earned, err := f.badges.ListEarned(context.Background(), userID)
	require.NoError(t, err)
	ids := []string{}
	for _, e := range earned {
		ids = append(ids, e.BadgeID)
	}
	return ids
}

func assertBalance(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected balance %s, got %s", expected, actual)
}

func TestCompleteProposal_TransfersCredits(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()
	docstoretest.SeedUser(t, f.store, "student", "5")
	docstoretest.SeedUser(t, f.store, "teacher", "2")
	docstoretest.SeedProposal(t, f.store, "p1", "student", "teacher", domain.ProposalAccepted)
	f.notifier.EXPECT().Notify(gomock.Any(), "student", gomock.Any(), domain.NotificationProposal, "p1")
	f.notifier.EXPECT().Notify(gomock.Any(), "teacher", gomock.Any(), domain.NotificationProposal, "p1")

	receipt, err := f.service.CompleteProposal(ctx, "p1", "student", "teacher", 3)
	require.NoError(t, err)
	assertBalance(t, "2", receipt.StudentBalance)
	assertBalance(t, "5", receipt.TeacherBalance)
	assert.Equal(t, []string{domain.BadgeFirstTrade}, receipt.StudentBadges)
	assert.Equal(t, []string{domain.BadgeFirstTrade}, receipt.TeacherBadges)

	student := f.user(t, "student")
	teacher := f.user(t, "teacher")
	assertBalance(t, "2", student.TimeBalance)
	assertBalance(t, "5", teacher.TimeBalance)
	assert.Equal(t, 1, student.CompletedTradesCount)
	assert.Equal(t, 0, student.CompletedTradesAsTeacher)
	assert.Equal(t, 1, teacher.CompletedTradesCount)
	assert.Equal(t, 1, teacher.CompletedTradesAsTeacher)

	p := f.proposal(t, "p1")
	assert.Equal(t, domain.ProposalCompleted, p.Status)
	require.NotNil(t, p.CompletedAt)

	assert.Equal(t, []string{domain.BadgeFirstTrade}, f.earned(t, "student"))
	assert.Equal(t, []string{domain.BadgeFirstTrade}, f.earned(t, "teacher"))
}

func TestCompleteProposal_ScheduledProposal(t *testing.T) {
	f := NewMock(t)
	docstoretest.SeedUser(t, f.store, "student", "1.5")
	docstoretest.SeedUser(t, f.store, "teacher", "0")
	docstoretest.SeedProposal(t, f.store, "p1", "teacher", "student", domain.ProposalScheduled)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	receipt, err := f.service.CompleteProposal(context.Background(), "p1", "student", "teacher", 1.5)
	require.NoError(t, err)
	assertBalance(t, "0", receipt.StudentBalance)
	assertBalance(t, "1.5", receipt.TeacherBalance)
}

func TestCompleteProposal_Preconditions(t *testing.T) {
	tests := []struct {
		name        string
		seed        func(f *fixture, t *testing.T)
		proposalID  string
		studentID   string
		teacherID   string
		hours       float64
		expectedErr any
		contains    []string
	}{
		{
			name:        "Zero hours",
			proposalID:  "p1", studentID: "student", teacherID: "teacher", hours: 0,
			expectedErr: &domain.ValidationError{},
		},
		{
			name:        "Negative hours",
			proposalID:  "p1", studentID: "student", teacherID: "teacher", hours: -2,
			expectedErr: &domain.ValidationError{},
		},
		{
			name:        "NaN hours",
			proposalID:  "p1", studentID: "student", teacherID: "teacher", hours: math.NaN(),
			expectedErr: &domain.ValidationError{},
		},
		{
			name:        "Infinite hours",
			proposalID:  "p1", studentID: "student", teacherID: "teacher", hours: math.Inf(1),
			expectedErr: &domain.ValidationError{},
		},
		{
			name:        "Same student and teacher",
			proposalID:  "p1", studentID: "student", teacherID: "student", hours: 1,
			expectedErr: &domain.ValidationError{},
		},
		{
			name:        "Missing teacher id",
			proposalID:  "p1", studentID: "student", teacherID: "", hours: 1,
			expectedErr: &domain.ValidationError{},
		},
		{
			name:        "Missing proposal",
			proposalID:  "p404", studentID: "student", teacherID: "teacher", hours: 1,
			expectedErr: &domain.NotFoundError{},
		},
		{
			name:        "Missing student",
			proposalID:  "p1", studentID: "ghost", teacherID: "teacher", hours: 1,
			expectedErr: &domain.NotFoundError{},
		},
		{
			name: "Pending proposal",
			seed: func(f *fixture, t *testing.T) {
				docstoretest.SeedProposal(t, f.store, "p2", "student", "teacher", domain.ProposalPending)
			},
			proposalID: "p2", studentID: "student", teacherID: "teacher", hours: 1,
			expectedErr: &domain.InvalidStateError{},
			contains:    []string{"pending"},
		},
		{
			name: "Rejected proposal",
			seed: func(f *fixture, t *testing.T) {
				docstoretest.SeedProposal(t, f.store, "p2", "student", "teacher", domain.ProposalRejected)
			},
			proposalID: "p2", studentID: "student", teacherID: "teacher", hours: 1,
			expectedErr: &domain.InvalidStateError{},
			contains:    []string{"rejected"},
		},
		{
			name:        "Insufficient balance",
			proposalID:  "p1", studentID: "student", teacherID: "teacher", hours: 2,
			expectedErr: &domain.InsufficientBalanceError{},
			contains:    []string{"1", "2"},
		},
		{
			name: "Student is not a party",
			seed: func(f *fixture, t *testing.T) {
				docstoretest.SeedUser(t, f.store, "outsider", "10")
			},
			proposalID: "p1", studentID: "outsider", teacherID: "teacher", hours: 1,
			expectedErr: &domain.AuthorizationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewMock(t)
			docstoretest.SeedUser(t, f.store, "student", "1")
			docstoretest.SeedUser(t, f.store, "teacher", "4")
			docstoretest.SeedProposal(t, f.store, "p1", "student", "teacher", domain.ProposalAccepted)
			if tt.seed != nil {
				tt.seed(f, t)
			}

			receipt, err := f.service.CompleteProposal(context.Background(), tt.proposalID, tt.studentID, tt.teacherID, tt.hours)
			assert.Nil(t, receipt)
			require.Error(t, err)
			switch tt.expectedErr.(type) {
			case *domain.ValidationError:
				var target *domain.ValidationError
				assert.ErrorAs(t, err, &target)
			case *domain.NotFoundError:
				var target *domain.NotFoundError
				assert.ErrorAs(t, err, &target)
			case *domain.InvalidStateError:
				var target *domain.InvalidStateError
				assert.ErrorAs(t, err, &target)
			case *domain.InsufficientBalanceError:
				var target *domain.InsufficientBalanceError
				assert.ErrorAs(t, err, &target)
			case *domain.AuthorizationError:
				var target *domain.AuthorizationError
				assert.ErrorAs(t, err, &target)
			}
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}

			assertBalance(t, "1", f.user(t, "student").TimeBalance)
			assertBalance(t, "4", f.user(t, "teacher").TimeBalance)
			assert.Equal(t, 0, f.user(t, "student").CompletedTradesCount)
			assert.Equal(t, domain.ProposalAccepted, f.proposal(t, "p1").Status)
			assert.Empty(t, f.earned(t, "student"))
		})
	}
}

func TestCompleteProposal_SecondCompletionFails(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()
	docstoretest.SeedUser(t, f.store, "student", "5")
	docstoretest.SeedUser(t, f.store, "teacher", "2")
	docstoretest.SeedProposal(t, f.store, "p1", "student", "teacher", domain.ProposalAccepted)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	_, err := f.service.CompleteProposal(ctx, "p1", "student", "teacher", 3)
	require.NoError(t, err)

	_, err = f.service.CompleteProposal(ctx, "p1", "student", "teacher", 1)
	var stateErr *domain.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Contains(t, err.Error(), "completed")

	assertBalance(t, "2", f.user(t, "student").TimeBalance)
	assertBalance(t, "5", f.user(t, "teacher").TimeBalance)
	assert.Equal(t, 1, f.user(t, "teacher").CompletedTradesAsTeacher)
}

func TestCompleteProposal_ConcurrentCompletionAppliesOnce(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()
	docstoretest.SeedUser(t, f.store, "student", "10")
	docstoretest.SeedUser(t, f.store, "teacher", "0")
	docstoretest.SeedProposal(t, f.store, "p1", "student", "teacher", domain.ProposalAccepted)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	const attempts = 4
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		invalid   int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.CompleteProposal(ctx, "p1", "student", "teacher", 3)
			mu.Lock()
			defer mu.Unlock()
			var stateErr *domain.InvalidStateError
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorAs(t, err, &stateErr):
				invalid++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, invalid)

	student := f.user(t, "student")
	teacher := f.user(t, "teacher")
	assertBalance(t, "7", student.TimeBalance)
	assertBalance(t, "3", teacher.TimeBalance)
	assertBalance(t, "10", student.TimeBalance.Add(teacher.TimeBalance))
	assert.Equal(t, 1, student.CompletedTradesCount)
	assert.Equal(t, 1, teacher.CompletedTradesAsTeacher)
}

func TestCompleteProposal_FirstTradeBadgeOnlyOnce(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()
	docstoretest.SeedUser(t, f.store, "student", "10")
	docstoretest.SeedUser(t, f.store, "teacher", "0")
	docstoretest.SeedProposal(t, f.store, "p1", "student", "teacher", domain.ProposalAccepted)
	docstoretest.SeedProposal(t, f.store, "p2", "teacher", "student", domain.ProposalScheduled)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(4)

	first, err := f.service.CompleteProposal(ctx, "p1", "student", "teacher", 1)
	require.NoError(t, err)
	second, err := f.service.CompleteProposal(ctx, "p2", "student", "teacher", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{domain.BadgeFirstTrade}, first.StudentBadges)
	assert.Empty(t, second.StudentBadges)
	assert.Equal(t, []string{domain.BadgeFirstTrade}, f.earned(t, "student"))
	assert.Equal(t, 2, f.user(t, "student").CompletedTradesCount)
}

func TestCompleteProposal_MasterTeacher(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()
	docstoretest.SeedUser(t, f.store, "student", "100")
	teacher := docstoretest.SeedUser(t, f.store, "teacher", "0")
	teacher.CompletedTradesCount = 9
	teacher.CompletedTradesAsTeacher = 9
	require.NoError(t, f.store.Set(ctx, docstore.Doc(docstore.Users, "teacher"), teacher))
	docstoretest.SeedProposal(t, f.store, "p1", "student", "teacher", domain.ProposalAccepted)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	receipt, err := f.service.CompleteProposal(ctx, "p1", "student", "teacher", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.BadgeMasterTeacher}, receipt.TeacherBadges)
	assert.Equal(t, []string{domain.BadgeFirstTrade}, receipt.StudentBadges)
	assert.Equal(t, []string{domain.BadgeMasterTeacher}, f.earned(t, "teacher"))
}
