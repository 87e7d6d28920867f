package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "New"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusResolved   TicketStatus = "Resolved"
)

// Valid reports whether the status is a member of the allowed set. Transitions
// between any two members are unconstrained.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusNew, TicketStatusInProgress, TicketStatusResolved:
		return true
	}
	return false
}

// Ticket is the persisted record of one support query. All submitter-provided
// fields and the department are immutable after creation; only Status changes.
type Ticket struct {
	ID         int64
	TicketID   string
	UserEmail  string
	Subject    string
	Body       string
	Department string
	Status     TicketStatus
	CreatedAt  time.Time
}
