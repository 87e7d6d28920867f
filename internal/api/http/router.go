package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campuskit/helpdesk-service/internal/api/http/handlers"
	"github.com/campuskit/helpdesk-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Queries   *handlers.QueriesHandler
	Tickets   *handlers.TicketsHandler
	Pages     *handlers.PagesHandler
	AdminAuth *auth.BasicAuth
}

// RegisterRoutes wires HTTP routes. Basic auth guards only the dashboard
// page; the /api ticket endpoints are reached by its JavaScript and stay
// open, matching the original design.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/submit-query", cfg.Queries.SubmitQuery)
	app.Get("/check-ticket", cfg.Pages.CheckTicket)
	app.Get("/admin", cfg.AdminAuth.Handle, cfg.Pages.Admin)

	api := app.Group("/api")
	api.Get("/tickets", cfg.Tickets.ListTickets)
	api.Post("/ticket/:id/status", cfg.Tickets.UpdateStatus)
	api.Get("/ticket/status/:ticket_id", cfg.Queries.TicketStatus)
}
