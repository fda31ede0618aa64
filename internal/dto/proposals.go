package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateProposalRequestDTO struct {
	ReceiverID     string `json:"receiverId" example:"u2"`
	SkillOffered   string `json:"skillOffered" example:"guitar"`
	SkillRequested string `json:"skillRequested" example:"spanish"`
	Message        string `json:"message" example:"Let's trade!"`
}

type CompleteProposalRequestDTO struct {
	StudentID string  `json:"studentId" example:"u1"`
	TeacherID string  `json:"teacherId" example:"u2"`
	Hours     float64 `json:"hours" example:"1.5"`
}

type CompleteProposalResponseDTO struct {
	ProposalID     string          `json:"proposalId" example:"p1"`
	StudentID      string          `json:"studentId" example:"u1"`
	TeacherID      string          `json:"teacherId" example:"u2"`
	Hours          decimal.Decimal `json:"hours" swaggertype:"string" example:"1.5"`
	StudentBalance decimal.Decimal `json:"studentBalance" swaggertype:"string" example:"3.5"`
	TeacherBalance decimal.Decimal `json:"teacherBalance" swaggertype:"string" example:"6.5"`
	CompletedAt    time.Time       `json:"completedAt"`
	StudentBadges  []string        `json:"studentBadges" example:"first_trade"`
	TeacherBadges  []string        `json:"teacherBadges" example:"first_trade"`
}
