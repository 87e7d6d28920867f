// Package ticketid derives the public-facing ticket identifier shared with
// submitters, distinct from the internal surrogate key.
package ticketid

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const prefix = "TICKET-"

// FromBody derives the public ticket id from the query body: the prefix plus
// the first 8 hex characters of the body's SHA-256 digest. Deterministic, so
// two tickets with an identical body collide; the store's unique index rejects
// the second rather than overwriting the first.
func FromBody(body string) string {
	sum := sha256.Sum256([]byte(body))
	return fmt.Sprintf("%s%s", prefix, hex.EncodeToString(sum[:])[:8])
}
