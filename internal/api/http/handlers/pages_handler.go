package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campuskit/helpdesk-service/internal/web"
)

// PagesHandler serves the embedded HTML pages.
type PagesHandler struct{}

// NewPagesHandler constructs handler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Admin GET /admin, behind basic auth.
func (h *PagesHandler) Admin(c *fiber.Ctx) error {
	c.Type("html")
	return c.Send(web.AdminPage)
}

// CheckTicket GET /check-ticket.
func (h *PagesHandler) CheckTicket(c *fiber.Ctx) error {
	c.Type("html")
	return c.Send(web.TicketPage)
}
