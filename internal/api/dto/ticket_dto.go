package dto

import (
	"time"

	"github.com/campuskit/helpdesk-service/internal/domain"
)

// SubmitQueryRequest payload.
type SubmitQueryRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SubmitQueryResponse confirms intake and routing.
type SubmitQueryResponse struct {
	Message  string `json:"message"`
	TicketID string `json:"ticket_id"`
	RoutedTo string `json:"routed_to"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// TicketRecord is the full admin-facing serialization of a ticket.
type TicketRecord struct {
	ID         int64               `json:"id"`
	TicketID   string              `json:"ticket_id"`
	UserEmail  string              `json:"user_email"`
	Subject    string              `json:"subject"`
	Body       string              `json:"body"`
	Department string              `json:"department"`
	Status     domain.TicketStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}
