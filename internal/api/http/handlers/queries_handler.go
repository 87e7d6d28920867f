package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campuskit/helpdesk-service/internal/api/dto"
	"github.com/campuskit/helpdesk-service/internal/service"
	"github.com/campuskit/helpdesk-service/pkg/util"
)

// QueriesHandler serves the public intake and lookup endpoints.
type QueriesHandler struct {
	service *service.QueryService
}

// NewQueriesHandler constructs handler.
func NewQueriesHandler(queryService *service.QueryService) *QueriesHandler {
	return &QueriesHandler{service: queryService}
}

// SubmitQuery POST /submit-query.
func (h *QueriesHandler) SubmitQuery(c *fiber.Ctx) error {
	var req dto.SubmitQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Subject == "" || req.Body == "" {
		return util.NewValidationError("email, subject, body required", nil)
	}

	ticket, err := h.service.Submit(c.Context(), req.Email, req.Subject, req.Body)
	if err != nil {
		return err
	}

	return c.JSON(dto.SubmitQueryResponse{
		Message:  "Your query has been received and routed successfully!",
		TicketID: ticket.TicketID,
		RoutedTo: ticket.Department,
	})
}

// TicketStatus GET /api/ticket/status/:ticket_id. Returns the restricted
// view only; the submitter's email and the query body stay private.
func (h *QueriesHandler) TicketStatus(c *fiber.Ctx) error {
	view, err := h.service.PublicStatus(c.Context(), c.Params("ticket_id"))
	if err != nil {
		return err
	}
	return c.JSON(view)
}
