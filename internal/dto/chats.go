package dto

import "time"

type SendMessageRequestDTO struct {
	Text string `json:"text" example:"See you at six"`
}

type SuggestMeetingPointRequestDTO struct {
	Location string    `json:"location" example:"Central library"`
	DateTime time.Time `json:"dateTime" example:"2024-05-01T18:00:00Z"`
}

type MeetingPointStatusRequestDTO struct {
	Status string `json:"status" enums:"accepted,rejected" example:"accepted"`
}
