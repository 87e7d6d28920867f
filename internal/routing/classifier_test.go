package routing

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"admissions keyword", "How do I apply for the fall intake?", "Admissions"},
		{"finance keyword", "I was charged twice, please process a refund", "Finance"},
		{"academics keyword", "I need my transcript", "Academics"},
		{"it keyword", "the wifi in dorm B is down", "IT Support"},
		{"library multiword keyword", "I lost my library card", "Library"},
		{"case insensitive", "PAYMENT not going through", "Finance"},
		{"keyword inside word", "my reapplication was rejected", "Admissions"},
		{"no keyword", "the cafeteria food is cold", DefaultDepartment},
		{"empty text", "", DefaultDepartment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.text); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCategorizeDeclarationOrderWins(t *testing.T) {
	// "application" (Admissions) and "fees" (Finance) both match; the
	// earlier-declared department takes the ticket.
	got := Categorize("my application fees were not refunded")
	if got != "Admissions" {
		t.Errorf("Categorize = %q, want Admissions", got)
	}

	// "grades" (Academics) and "email" (IT Support) both match.
	if got := Categorize("I cannot see my grades in my email"); got != "Academics" {
		t.Errorf("Categorize = %q, want Academics", got)
	}
}

func TestMailboxFor(t *testing.T) {
	table := NewTable("yourcollege.com", "")

	tests := []struct {
		department string
		want       string
	}{
		{"Admissions", "admissions@yourcollege.com"},
		{"Finance", "finance@yourcollege.com"},
		{"Academics", "academics@yourcollege.com"},
		{"IT Support", "it.support@yourcollege.com"},
		{"Library", "library@yourcollege.com"},
		{DefaultDepartment, "help@yourcollege.com"},
		{"Unknown Dept", "help@yourcollege.com"},
	}
	for _, tt := range tests {
		if got := table.MailboxFor(tt.department); got != tt.want {
			t.Errorf("MailboxFor(%q) = %q, want %q", tt.department, got, tt.want)
		}
	}
}

func TestMailboxForCustomDefault(t *testing.T) {
	table := NewTable("yourcollege.com", "frontdesk@yourcollege.com")
	if got := table.MailboxFor(DefaultDepartment); got != "frontdesk@yourcollege.com" {
		t.Errorf("MailboxFor(default) = %q, want frontdesk@yourcollege.com", got)
	}
}

func TestDepartmentsOrder(t *testing.T) {
	want := []string{"Admissions", "Finance", "Academics", "IT Support", "Library"}
	got := Departments()
	if len(got) != len(want) {
		t.Fatalf("Departments() returned %d labels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Departments()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
