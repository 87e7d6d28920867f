package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/campuskit/helpdesk-service/internal/api/dto"
	"github.com/campuskit/helpdesk-service/internal/domain"
	"github.com/campuskit/helpdesk-service/internal/service"
	"github.com/campuskit/helpdesk-service/pkg/util"
)

// TicketsHandler serves the admin-facing ticket endpoints backing the
// dashboard.
type TicketsHandler struct {
	service *service.QueryService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(queryService *service.QueryService) *TicketsHandler {
	return &TicketsHandler{service: queryService}
}

// ListTickets GET /api/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.service.ListTickets(c.Context())
	if err != nil {
		return err
	}
	records := make([]dto.TicketRecord, 0, len(tickets))
	for i := range tickets {
		records = append(records, ticketRecord(&tickets[i]))
	}
	return c.JSON(records)
}

// UpdateStatus POST /api/ticket/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return util.NewNotFound("ticket", nil)
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(ticketRecord(ticket))
}

func ticketRecord(ticket *domain.Ticket) dto.TicketRecord {
	return dto.TicketRecord{
		ID:         ticket.ID,
		TicketID:   ticket.TicketID,
		UserEmail:  ticket.UserEmail,
		Subject:    ticket.Subject,
		Body:       ticket.Body,
		Department: ticket.Department,
		Status:     ticket.Status,
		CreatedAt:  ticket.CreatedAt,
	}
}
