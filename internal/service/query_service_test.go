package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"go.uber.org/zap"

	"github.com/campuskit/helpdesk-service/internal/config"
	"github.com/campuskit/helpdesk-service/internal/domain"
	"github.com/campuskit/helpdesk-service/internal/events"
	"github.com/campuskit/helpdesk-service/internal/repository"
	"github.com/campuskit/helpdesk-service/internal/routing"
	"github.com/campuskit/helpdesk-service/pkg/util"
)

var idPattern = regexp.MustCompile(`^TICKET-[0-9a-f]{8}$`)

type sentMail struct {
	recipient string
	subject   string
	body      string
}

// recordingMailer captures sends instead of talking to a relay.
type recordingMailer struct {
	sent []sentMail
	fail bool
}

func (m *recordingMailer) Send(_ context.Context, recipient, subject, body string) error {
	if m.fail {
		return errors.New("relay unreachable")
	}
	m.sent = append(m.sent, sentMail{recipient: recipient, subject: subject, body: body})
	return nil
}

func newTestService(t *testing.T, mailer *recordingMailer) (*QueryService, repository.TicketRepository) {
	t.Helper()
	repo := repository.NewMemoryTicketRepository()
	dispatcher := events.NewInMemoryDispatcher()
	logger := zap.NewNop()

	svc := NewQueryService(QueryDependencies{
		TicketRepo: repo,
		Dispatcher: dispatcher,
		Cache:      nil,
		CacheCfg:   config.CacheConfig{},
		Logger:     logger,
	})
	notifications := NewNotificationService(dispatcher, mailer, routing.NewTable("yourcollege.com", ""), logger)
	notifications.RegisterHandlers()
	return svc, repo
}

func TestSubmitClassifiesAndPersists(t *testing.T) {
	svc, repo := newTestService(t, &recordingMailer{})

	ticket, err := svc.Submit(context.Background(), "a@x.com", "Help", "I need my transcript")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ticket.Department != "Academics" {
		t.Errorf("department = %q, want Academics", ticket.Department)
	}
	if ticket.Status != domain.TicketStatusNew {
		t.Errorf("status = %q, want New", ticket.Status)
	}
	if !idPattern.MatchString(ticket.TicketID) {
		t.Errorf("ticket id %q does not match %s", ticket.TicketID, idPattern)
	}
	if ticket.ID == 0 || ticket.CreatedAt.IsZero() {
		t.Error("store did not assign id and created_at")
	}

	stored, err := repo.GetByPublicID(context.Background(), ticket.TicketID)
	if err != nil {
		t.Fatalf("GetByPublicID: %v", err)
	}
	if stored.Subject != "Help" || stored.Status != domain.TicketStatusNew || !stored.CreatedAt.Equal(ticket.CreatedAt) {
		t.Errorf("round trip mismatch: %+v", stored)
	}
}

func TestSubmitNotifiesDepartmentThenSubmitter(t *testing.T) {
	mailer := &recordingMailer{}
	svc, _ := newTestService(t, mailer)

	ticket, err := svc.Submit(context.Background(), "a@x.com", "Help", "scholarship question")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(mailer.sent))
	}
	if mailer.sent[0].recipient != "finance@yourcollege.com" {
		t.Errorf("first email to %q, want the department mailbox", mailer.sent[0].recipient)
	}
	if mailer.sent[1].recipient != "a@x.com" {
		t.Errorf("second email to %q, want the submitter", mailer.sent[1].recipient)
	}
	for _, mail := range mailer.sent {
		if !regexp.MustCompile(regexp.QuoteMeta(ticket.TicketID)).MatchString(mail.subject + mail.body) {
			t.Errorf("email to %s does not mention the ticket id", mail.recipient)
		}
	}
}

func TestSubmitSucceedsWhenMailFails(t *testing.T) {
	svc, _ := newTestService(t, &recordingMailer{fail: true})

	if _, err := svc.Submit(context.Background(), "a@x.com", "Help", "wifi is down"); err != nil {
		t.Fatalf("Submit must not fail on notification errors, got %v", err)
	}
}

func TestSubmitDuplicateBodyConflicts(t *testing.T) {
	svc, _ := newTestService(t, &recordingMailer{})

	if _, err := svc.Submit(context.Background(), "a@x.com", "Help", "same body"); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	_, err := svc.Submit(context.Background(), "b@x.com", "Other", "same body")
	var domainErr *util.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
		t.Errorf("duplicate body: got %v, want CONFLICT", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, repo := newTestService(t, &recordingMailer{})
	ticket, err := svc.Submit(context.Background(), "a@x.com", "Help", "exam dates")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), ticket.ID, "In Progress")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.TicketStatusInProgress {
		t.Errorf("status = %q, want In Progress", updated.Status)
	}

	stored, err := repo.GetByID(context.Background(), ticket.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Status != domain.TicketStatusInProgress {
		t.Errorf("persisted status = %q, want In Progress", stored.Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, repo := newTestService(t, &recordingMailer{})
	ticket, err := svc.Submit(context.Background(), "a@x.com", "Help", "exam dates")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	for _, status := range []string{"", "Closed", "new", "RESOLVED"} {
		_, err := svc.UpdateStatus(context.Background(), ticket.ID, status)
		var domainErr *util.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
			t.Errorf("UpdateStatus(%q): got %v, want VALIDATION_FAILED", status, err)
		}
	}

	stored, err := repo.GetByID(context.Background(), ticket.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Status != domain.TicketStatusNew {
		t.Errorf("rejected update changed stored status to %q", stored.Status)
	}
}

func TestUpdateStatusUnknownTicket(t *testing.T) {
	svc, _ := newTestService(t, &recordingMailer{})

	_, err := svc.UpdateStatus(context.Background(), 12345, "Resolved")
	var domainErr *util.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "NOT_FOUND" {
		t.Errorf("got %v, want NOT_FOUND", err)
	}
}

func TestPublicStatusRestrictedAndIdempotent(t *testing.T) {
	svc, _ := newTestService(t, &recordingMailer{})
	ticket, err := svc.Submit(context.Background(), "a@x.com", "Help", "refund please")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	first, err := svc.PublicStatus(context.Background(), ticket.TicketID)
	if err != nil {
		t.Fatalf("PublicStatus: %v", err)
	}
	if first.TicketID != ticket.TicketID || first.Subject != "Help" || first.Status != domain.TicketStatusNew {
		t.Errorf("unexpected view %+v", first)
	}

	second, err := svc.PublicStatus(context.Background(), ticket.TicketID)
	if err != nil {
		t.Fatalf("PublicStatus (second): %v", err)
	}
	if *first != *second {
		t.Errorf("lookup not idempotent: %+v vs %+v", first, second)
	}
}

func TestPublicStatusNotFound(t *testing.T) {
	svc, _ := newTestService(t, &recordingMailer{})

	_, err := svc.PublicStatus(context.Background(), "TICKET-deadbeef")
	var domainErr *util.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "NOT_FOUND" {
		t.Errorf("got %v, want NOT_FOUND", err)
	}
}

func TestListTicketsMostRecentFirst(t *testing.T) {
	svc, _ := newTestService(t, &recordingMailer{})

	bodies := []string{"first query", "second query", "third query"}
	for _, body := range bodies {
		if _, err := svc.Submit(context.Background(), "a@x.com", "Help", body); err != nil {
			t.Fatalf("Submit(%q): %v", body, err)
		}
	}

	tickets, err := svc.ListTickets(context.Background())
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if len(tickets) != 3 {
		t.Fatalf("listed %d tickets, want 3", len(tickets))
	}
	for i, wantBody := range []string{"third query", "second query", "first query"} {
		if tickets[i].Body != wantBody {
			t.Errorf("tickets[%d].Body = %q, want %q", i, tickets[i].Body, wantBody)
		}
	}
	for i := 1; i < len(tickets); i++ {
		if tickets[i].CreatedAt.After(tickets[i-1].CreatedAt) {
			t.Errorf("tickets not in created_at descending order at index %d", i)
		}
	}
}
