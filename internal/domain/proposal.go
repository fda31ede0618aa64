package domain

type ProposalStatus string

const (
	ProposalPending   ProposalStatus = "pending"
	ProposalAccepted  ProposalStatus = "accepted"
	ProposalRejected  ProposalStatus = "rejected"
	ProposalScheduled ProposalStatus = "scheduled"
	ProposalCompleted ProposalStatus = "completed"
	ProposalCanceled  ProposalStatus = "canceled"
)

var transitions = map[ProposalStatus][]ProposalStatus{
	ProposalPending:   {ProposalAccepted, ProposalRejected, ProposalCanceled},
	ProposalAccepted:  {ProposalScheduled, ProposalCompleted},
	ProposalScheduled: {ProposalCompleted},
	ProposalRejected:  nil,
	ProposalCompleted: nil,
	ProposalCanceled:  nil,
}

// verbs name each target status in InvalidStateError messages.
var verbs = map[ProposalStatus]string{
	ProposalAccepted:  "accepted",
	ProposalRejected:  "rejected",
	ProposalScheduled: "scheduled",
	ProposalCompleted: "completed",
	ProposalCanceled:  "canceled",
}

func (s ProposalStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s ProposalStatus) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition moves p to next or returns an InvalidStateError carrying the current status.
func (p *Proposal) Transition(next ProposalStatus) error {
	if !p.Status.CanTransitionTo(next) {
		return &InvalidStateError{Action: verbs[next], Current: p.Status}
	}
	p.Status = next
	return nil
}
