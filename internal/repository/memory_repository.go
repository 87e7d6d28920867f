package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campuskit/helpdesk-service/internal/domain"
	"github.com/campuskit/helpdesk-service/pkg/util"
)

// memoryTicketRepository keeps tickets in process memory. It backs local
// development runs without a POSTGRES_DSN and the test suites; it enforces
// the same ticket_id uniqueness the SQL schema does.
type memoryTicketRepository struct {
	mu          sync.RWMutex
	seq         int64
	byID        map[int64]domain.Ticket
	byPublicID  map[string]int64
	lastCreated time.Time
}

// NewMemoryTicketRepository instantiates the in-memory store.
func NewMemoryTicketRepository() TicketRepository {
	return &memoryTicketRepository{
		byID:       make(map[int64]domain.Ticket),
		byPublicID: make(map[string]int64),
	}
}

func (r *memoryTicketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byPublicID[ticket.TicketID]; exists {
		return util.NewConflict("ticket id already exists", map[string]any{"ticket_id": ticket.TicketID})
	}

	r.seq++
	ticket.ID = r.seq
	if ticket.CreatedAt.IsZero() {
		// strictly increasing timestamps keep listing order well defined
		now := time.Now().UTC()
		if !now.After(r.lastCreated) {
			now = r.lastCreated.Add(time.Microsecond)
		}
		ticket.CreatedAt = now
	}
	r.lastCreated = ticket.CreatedAt

	r.byID[ticket.ID] = *ticket
	r.byPublicID[ticket.TicketID] = ticket.ID
	return nil
}

func (r *memoryTicketRepository) ListAll(_ context.Context) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Ticket, 0, len(r.byID))
	for _, ticket := range r.byID {
		result = append(result, ticket)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *memoryTicketRepository) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ticket, ok := r.byID[id]
	if !ok {
		return nil, util.NewNotFound("ticket", nil)
	}
	return &ticket, nil
}

func (r *memoryTicketRepository) GetByPublicID(_ context.Context, ticketID string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPublicID[ticketID]
	if !ok {
		return nil, util.NewNotFound("ticket", nil)
	}
	ticket := r.byID[id]
	return &ticket, nil
}

func (r *memoryTicketRepository) UpdateStatus(_ context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.byID[id]
	if !ok {
		return nil, util.NewNotFound("ticket", map[string]any{"id": id})
	}
	ticket.Status = status
	r.byID[id] = ticket
	return &ticket, nil
}
