package routing

import (
	"fmt"
	"strings"
)

// DefaultDepartment is the fallback label when no keyword rule matches.
const DefaultDepartment = "General Inquiries"

// rule binds a department label to the keywords that route to it.
type rule struct {
	department string
	keywords   []string
}

// Declaration order is significant: a body matching keywords from two
// departments resolves to the earlier-declared one.
var rules = []rule{
	{"Admissions", []string{"admission", "apply", "application", "enrollment", "prospectus"}},
	{"Finance", []string{"fees", "payment", "scholarship", "invoice", "billing", "refund", "finance"}},
	{"Academics", []string{"exam", "grades", "transcript", "courses", "classes", "syllabus"}},
	{"IT Support", []string{"wifi", "password", "login", "email", "software", "computer"}},
	{"Library", []string{"books", "journal", "borrow", "return", "library card"}},
}

var mailboxLocalParts = map[string]string{
	"Admissions": "admissions",
	"Finance":    "finance",
	"Academics":  "academics",
	"IT Support": "it.support",
	"Library":    "library",
}

// Table is the immutable routing configuration, built once at startup.
type Table struct {
	mailboxes      map[string]string
	defaultMailbox string
}

// NewTable builds department mailbox addresses from the given mail domain.
// defaultMailbox receives queries routed to the default department; when
// empty it falls back to help@<domain>.
func NewTable(mailDomain, defaultMailbox string) *Table {
	if defaultMailbox == "" {
		defaultMailbox = fmt.Sprintf("help@%s", mailDomain)
	}
	mailboxes := make(map[string]string, len(mailboxLocalParts))
	for department, local := range mailboxLocalParts {
		mailboxes[department] = fmt.Sprintf("%s@%s", local, mailDomain)
	}
	return &Table{mailboxes: mailboxes, defaultMailbox: defaultMailbox}
}

// Categorize maps free text to a department label by substring keyword
// matching. Matching is case-insensitive; empty text resolves to the default
// department.
func Categorize(text string) string {
	if text == "" {
		return DefaultDepartment
	}
	lowered := strings.ToLower(text)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lowered, keyword) {
				return r.department
			}
		}
	}
	return DefaultDepartment
}

// MailboxFor returns the email address of the department's mailbox.
func (t *Table) MailboxFor(department string) string {
	if addr, ok := t.mailboxes[department]; ok {
		return addr
	}
	return t.defaultMailbox
}

// Departments lists the configured department labels in declaration order,
// excluding the default.
func Departments() []string {
	labels := make([]string, 0, len(rules))
	for _, r := range rules {
		labels = append(labels, r.department)
	}
	return labels
}
