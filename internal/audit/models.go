// Package audit records an append-only trail of verification requests.
// Events never carry the raw identity number, only a SHA-256 digest: the
// trail answers "was this ID checked, when, with what outcome" without
// becoming a PII store itself.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Event is one verification attempt.
type Event struct {
	ID           uuid.UUID `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	RequestID    string    `json:"request_id,omitempty"`
	InputDigest  string    `json:"input_digest"`
	Outcome      string    `json:"outcome"` // "valid" or a parse-failure reason code
	DivisionCode string    `json:"division_code,omitempty"`
}

// DigestInput hashes a raw identity-number string for audit storage.
func DigestInput(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
