package ticketid

import (
	"regexp"
	"testing"
)

var idPattern = regexp.MustCompile(`^TICKET-[0-9a-f]{8}$`)

func TestFromBodyFormat(t *testing.T) {
	for _, body := range []string{"I need my transcript", "", "日本語のクエリ", "a"} {
		id := FromBody(body)
		if !idPattern.MatchString(id) {
			t.Errorf("FromBody(%q) = %q, does not match %s", body, id, idPattern)
		}
	}
}

func TestFromBodyDeterministic(t *testing.T) {
	a := FromBody("same body")
	b := FromBody("same body")
	if a != b {
		t.Errorf("FromBody not deterministic: %q vs %q", a, b)
	}
	if FromBody("other body") == a {
		t.Errorf("distinct bodies produced the same id %q", a)
	}
}
