package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campuskit/helpdesk-service/internal/config"
	"github.com/campuskit/helpdesk-service/internal/domain"
	"github.com/campuskit/helpdesk-service/internal/events"
	"github.com/campuskit/helpdesk-service/internal/persistence"
	"github.com/campuskit/helpdesk-service/internal/repository"
	"github.com/campuskit/helpdesk-service/internal/routing"
	"github.com/campuskit/helpdesk-service/internal/ticketid"
	"github.com/campuskit/helpdesk-service/pkg/util"
)

const statusCacheKeyPrefix = "ticket:status:"

// QueryService coordinates query intake and ticket administration.
type QueryService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	cache      *persistence.Redis
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// QueryDependencies bundles collaborators for the query service.
type QueryDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	Cache      *persistence.Redis
	CacheCfg   config.CacheConfig
	Logger     *zap.Logger
}

// TicketStatusView is the restricted projection served to anonymous lookups.
// It never carries the submitter's email or the query body.
type TicketStatusView struct {
	TicketID  string              `json:"ticket_id"`
	Subject   string              `json:"subject"`
	Status    domain.TicketStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// NewQueryService constructs the service.
func NewQueryService(deps QueryDependencies) *QueryService {
	return &QueryService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheCfg.StatusTTL(),
		logger:     deps.Logger,
	}
}

// Submit classifies the query body, persists a new ticket and publishes the
// created event. Notification runs inside the event handlers; their failures
// never surface here.
func (s *QueryService) Submit(ctx context.Context, email, subject, body string) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		TicketID:   ticketid.FromBody(body),
		UserEmail:  strings.TrimSpace(email),
		Subject:    strings.TrimSpace(subject),
		Body:       body,
		Department: routing.Categorize(body),
		Status:     domain.TicketStatusNew,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.TicketID,
		Payload:  events.TicketCreatedPayload{Ticket: *ticket},
	})
	return ticket, nil
}

// ListTickets returns every ticket, most recent first.
func (s *QueryService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.ListAll(ctx)
}

// GetTicket fetches one ticket by its surrogate id.
func (s *QueryService) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// UpdateStatus validates the target status before touching the store, then
// applies it atomically and invalidates the public status cache.
func (s *QueryService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Ticket, error) {
	newStatus := domain.TicketStatus(status)
	if !newStatus.Valid() {
		return nil, util.NewValidationError("missing or invalid status", map[string]any{"status": status})
	}

	ticket, err := s.tickets.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}

	s.cache.CacheDel(ctx, statusCacheKeyPrefix+ticket.TicketID)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.TicketID,
		Payload:  events.TicketStatusChangedPayload{NewStatus: newStatus},
	})
	return ticket, nil
}

// PublicStatus resolves the restricted status view by public ticket id,
// reading through the best-effort cache.
func (s *QueryService) PublicStatus(ctx context.Context, publicID string) (*TicketStatusView, error) {
	key := statusCacheKeyPrefix + publicID
	if raw, ok := s.cache.CacheGet(ctx, key); ok {
		var view TicketStatusView
		if err := json.Unmarshal([]byte(raw), &view); err == nil {
			return &view, nil
		}
	}

	ticket, err := s.tickets.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	view := &TicketStatusView{
		TicketID:  ticket.TicketID,
		Subject:   ticket.Subject,
		Status:    ticket.Status,
		CreatedAt: ticket.CreatedAt,
	}
	if encoded, err := json.Marshal(view); err == nil {
		s.cache.CacheSet(ctx, key, string(encoded), s.cacheTTL)
	}
	return view, nil
}

func (s *QueryService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
