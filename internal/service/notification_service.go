package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campuskit/helpdesk-service/internal/events"
	"github.com/campuskit/helpdesk-service/internal/notifier"
	"github.com/campuskit/helpdesk-service/internal/routing"
)

// NotificationService emits email notifications for domain events. Send
// failures are logged and swallowed: delivery is best-effort and must never
// fail the operation that triggered it.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     notifier.Mailer
	routes     *routing.Table
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer notifier.Mailer, routes *routing.Table, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		routes:     routes,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
}

// handleTicketCreated notifies the routed department first, then the
// submitter. Order matters; each send stands alone and a failed department
// mail does not stop the submitter mail.
func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return nil
	}
	ticket := payload.Ticket
	n.logger.Info("TicketCreated",
		zap.String("ticket_id", ticket.TicketID),
		zap.String("department", ticket.Department))

	deptSubject := fmt.Sprintf("New Query from %s: %s [%s]", ticket.UserEmail, ticket.Subject, ticket.TicketID)
	deptBody := fmt.Sprintf(
		"A new query has been routed to your department.\n\nFrom: %s\nSubject: %s\n\nQuery:\n---\n%s\n---",
		ticket.UserEmail, ticket.Subject, ticket.Body)
	n.send(ctx, n.routes.MailboxFor(ticket.Department), deptSubject, deptBody)

	userSubject := fmt.Sprintf("Query Received: Your Ticket ID is %s", ticket.TicketID)
	userBody := fmt.Sprintf(
		"Hello,\n\nThank you for contacting us. We have received your query and routed it to the %s.\n\nYour Ticket ID is: %s",
		ticket.Department, ticket.TicketID)
	n.send(ctx, ticket.UserEmail, userSubject, userBody)

	return nil
}

func (n *NotificationService) handleTicketStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketStatusChanged",
		zap.String("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) send(ctx context.Context, recipient, subject, body string) {
	if n.mailer == nil {
		n.logger.Debug("mailer disabled; skipping email", zap.String("to", recipient))
		return
	}
	if err := n.mailer.Send(ctx, recipient, subject, body); err != nil {
		n.logger.Error("failed to send email", zap.String("to", recipient), zap.Error(err))
	}
}
