package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/skillswap/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	users := NewMockUserRepo(ctrl)
	return New(users), users
}

func TestGetBalance(t *testing.T) {
	service, users := NewMock(t)

	tests := []struct {
		name            string
		userID          string
		prepareMock     func()
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name:   "Balance of existing user",
			userID: "u1",
			prepareMock: func() {
				users.EXPECT().Get(gomock.Any(), "u1").Return(&domain.UserAccount{ID: "u1", TimeBalance: decimal.RequireFromString("2.5")}, nil)
			},
			expectedBalance: decimal.RequireFromString("2.5"),
		},
		{
			name:   "Unknown user",
			userID: "u2",
			prepareMock: func() {
				users.EXPECT().Get(gomock.Any(), "u2").Return(nil, nil)
			},
			expectedError: domain.NewNotFoundError("user", "u2"),
		},
		{
			name:   "Store error",
			userID: "u3",
			prepareMock: func() {
				users.EXPECT().Get(gomock.Any(), "u3").Return(nil, errors.New("store error"))
			},
			expectedError: errors.New("store error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.expectedBalance.Equal(balance))
		})
	}
}

func TestApplyTransfer(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name            string
		student         string
		teacher         string
		hours           string
		expectedStudent string
		expectedTeacher string
		expectedErr     any
	}{
		{name: "Plain transfer", student: "5", teacher: "2", hours: "3", expectedStudent: "2", expectedTeacher: "5"},
		{name: "Whole balance", student: "3", teacher: "0", hours: "3", expectedStudent: "0", expectedTeacher: "3"},
		{name: "Fractional hours", student: "1.5", teacher: "0.25", hours: "0.75", expectedStudent: "0.75", expectedTeacher: "1"},
		{name: "Insufficient balance", student: "1", teacher: "0", hours: "2", expectedErr: &domain.InsufficientBalanceError{}},
		{name: "Zero hours", student: "1", teacher: "0", hours: "0", expectedErr: &domain.ValidationError{}},
		{name: "Negative hours", student: "1", teacher: "0", hours: "-1", expectedErr: &domain.ValidationError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student, teacher, err := ApplyTransfer(d(tt.student), d(tt.teacher), d(tt.hours))
			switch tt.expectedErr.(type) {
			case *domain.InsufficientBalanceError:
				var target *domain.InsufficientBalanceError
				assert.ErrorAs(t, err, &target)
				assert.True(t, student.Equal(d(tt.student)))
				return
			case *domain.ValidationError:
				var target *domain.ValidationError
				assert.ErrorAs(t, err, &target)
				return
			}
			assert.NoError(t, err)
			assert.True(t, d(tt.expectedStudent).Equal(student), "student balance %s", student)
			assert.True(t, d(tt.expectedTeacher).Equal(teacher), "teacher balance %s", teacher)
			assert.True(t, d(tt.student).Add(d(tt.teacher)).Equal(student.Add(teacher)))
		})
	}
}
