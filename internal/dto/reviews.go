package dto

type CreateReviewRequestDTO struct {
	ProposalID string `json:"proposalId" example:"p1"`
	RevieweeID string `json:"revieweeId" example:"u2"`
	Rating     int    `json:"rating" minimum:"1" maximum:"5" example:"5"`
	Comment    string `json:"comment" example:"Great teacher"`
}
