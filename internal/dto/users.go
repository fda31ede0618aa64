package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateProfileRequestDTO struct {
	Email  string   `json:"email" example:"ana@example.com"`
	Name   string   `json:"name" example:"Ana"`
	Bio    string   `json:"bio" example:"Guitar teacher"`
	Skills []string `json:"skills" example:"guitar,spanish"`
}

type UpdateProfileRequestDTO struct {
	Name      *string  `json:"name,omitempty" example:"Ana"`
	Bio       *string  `json:"bio,omitempty" example:"Guitar teacher"`
	Skills    []string `json:"skills,omitempty" example:"guitar,spanish"`
	AvatarURL *string  `json:"avatarUrl,omitempty" example:"https://cdn.example.com/ana.png"`
}

type ProfileResponseDTO struct {
	ID                       string          `json:"id" example:"u1"`
	Email                    string          `json:"email" example:"ana@example.com"`
	Name                     string          `json:"name" example:"Ana"`
	Bio                      string          `json:"bio" example:"Guitar teacher"`
	AvatarURL                string          `json:"avatarUrl,omitempty"`
	Skills                   []string        `json:"skills" example:"guitar,spanish"`
	TimeBalance              decimal.Decimal `json:"timeBalance" swaggertype:"string" example:"3"`
	CompletedTradesCount     int             `json:"completedTradesCount" example:"4"`
	CompletedTradesAsTeacher int             `json:"completedTradesAsTeacher" example:"2"`
	AverageRating            float64         `json:"averageRating" example:"4.5"`
	CreatedAt                time.Time       `json:"createdAt"`
}

type BalanceResponseDTO struct {
	UserID      string          `json:"userId" example:"u1"`
	TimeBalance decimal.Decimal `json:"timeBalance" swaggertype:"string" example:"2.5"`
}
