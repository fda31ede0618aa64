package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type UserAccount struct {
	ID                       string          `json:"id"`
	Email                    string          `json:"email"`
	Name                     string          `json:"name"`
	NameLowercase            string          `json:"name_lowercase"`
	Bio                      string          `json:"bio"`
	AvatarURL                string          `json:"avatarUrl,omitempty"`
	Skills                   []string        `json:"skills"`
	TimeBalance              decimal.Decimal `json:"timeBalance"`
	CompletedTradesCount     int             `json:"completedTradesCount"`
	CompletedTradesAsTeacher int             `json:"completedTradesAsTeacher"`
	CreatedAt                time.Time       `json:"createdAt"`
}

func (u *UserAccount) Validate() error {
	if u.ID == "" {
		return NewValidationError("user id is required")
	}
	if u.TimeBalance.IsNegative() {
		return NewValidationError("time balance of user %s is negative", u.ID)
	}
	if u.CompletedTradesAsTeacher > u.CompletedTradesCount || u.CompletedTradesCount < 0 || u.CompletedTradesAsTeacher < 0 {
		return NewValidationError("trade counters of user %s are inconsistent", u.ID)
	}
	return nil
}

// Counters are the ledger values the badge rules look at.
type Counters struct {
	CompletedTradesCount     int
	CompletedTradesAsTeacher int
}

func (u *UserAccount) Counters() Counters {
	return Counters{
		CompletedTradesCount:     u.CompletedTradesCount,
		CompletedTradesAsTeacher: u.CompletedTradesAsTeacher,
	}
}

type Proposal struct {
	ID             string         `json:"id"`
	SenderID       string         `json:"senderId"`
	ReceiverID     string         `json:"receiverId"`
	SkillOffered   string         `json:"skillOffered"`
	SkillRequested string         `json:"skillRequested"`
	Message        string         `json:"message"`
	Status         ProposalStatus `json:"status"`
	ChatID         string         `json:"chatId,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty"`
}

func (p *Proposal) Validate() error {
	if p.ID == "" {
		return NewValidationError("proposal id is required")
	}
	if !p.Status.Valid() {
		return NewValidationError("proposal %s has unknown status %q", p.ID, p.Status)
	}
	if p.SenderID == "" || p.ReceiverID == "" || p.SenderID == p.ReceiverID {
		return NewValidationError("proposal %s must have two distinct parties", p.ID)
	}
	if p.Status == ProposalCompleted && p.CompletedAt == nil {
		return NewValidationError("completed proposal %s has no completion time", p.ID)
	}
	return nil
}

// IsParty reports whether userID is the sender or the receiver.
func (p *Proposal) IsParty(userID string) bool {
	return userID != "" && (userID == p.SenderID || userID == p.ReceiverID)
}

// Counterpart returns the other party of the proposal.
func (p *Proposal) Counterpart(userID string) string {
	if userID == p.SenderID {
		return p.ReceiverID
	}
	return p.SenderID
}

type EarnedBadge struct {
	ID       string    `json:"id"`
	BadgeID  string    `json:"badgeId"`
	EarnedAt time.Time `json:"earnedAt"`
}

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type LastMessage struct {
	Text      string    `json:"text"`
	SenderID  string    `json:"senderId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Chat struct {
	ID           string       `json:"id"`
	Participants []string     `json:"participants"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	LastMessage  *LastMessage `json:"lastMessage,omitempty"`
}

func (c *Chat) Validate() error {
	if c.ID == "" {
		return NewValidationError("chat id is required")
	}
	if len(c.Participants) != 2 || c.Participants[0] == c.Participants[1] {
		return NewValidationError("chat %s must have exactly two participants", c.ID)
	}
	return nil
}

func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

func (c *Chat) OtherParticipant(userID string) string {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type MeetingPointStatus string

const (
	MeetingPointPending  MeetingPointStatus = "pending"
	MeetingPointAccepted MeetingPointStatus = "accepted"
	MeetingPointRejected MeetingPointStatus = "rejected"
)

type MeetingPoint struct {
	ID        string             `json:"id"`
	ChatID    string             `json:"chatId"`
	SenderID  string             `json:"senderId"`
	Location  string             `json:"location"`
	DateTime  time.Time          `json:"dateTime"`
	Status    MeetingPointStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

type Review struct {
	ID         string    `json:"id"`
	ProposalID string    `json:"proposalId"`
	ReviewerID string    `json:"reviewerId"`
	RevieweeID string    `json:"revieweeId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

const (
	MinRating = 1
	MaxRating = 5
)

func (r *Review) Validate() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return NewValidationError("rating must be a number between %d and %d", MinRating, MaxRating)
	}
	if strings.TrimSpace(r.Comment) == "" {
		return NewValidationError("comment is required")
	}
	if r.ReviewerID == "" || r.RevieweeID == "" || r.ReviewerID == r.RevieweeID {
		return NewValidationError("a review needs a reviewer and a different reviewee")
	}
	return nil
}

type NotificationKind string

const (
	NotificationProposal NotificationKind = "proposal"
	NotificationChat     NotificationKind = "chat"
	NotificationReview   NotificationKind = "review"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"type"`
	LinkID    string           `json:"linkId"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// EarnedBadgeDetails joins an earned badge with its catalog entry, which is nil
// for badges no longer in the catalog.
type EarnedBadgeDetails struct {
	EarnedBadge
	Badge *Badge `json:"badge,omitempty"`
}
