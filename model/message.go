package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Message represents a single chat message fetched from the upstream source.
// Messages are immutable once stored; the upstream assigns the ID and it is
// never regenerated.
type Message struct {
	ID        string    `json:"id"`        // Upstream-assigned unique identifier
	UserID    string    `json:"user_id"`   // Author identifier (informational)
	UserName  string    `json:"user_name"` // Author display name, part of the searchable text
	Timestamp time.Time `json:"timestamp"` // Publication time (informational)
	Message   string    `json:"message"`   // Free text body, part of the searchable text
}

// NewMessage creates a message as the upstream source would deliver it.
// Mainly useful for static sources and tests.
func NewMessage(id, userID, userName string, ts time.Time, body string) Message {
	return Message{
		ID:        id,
		UserID:    userID,
		UserName:  userName,
		Timestamp: ts,
		Message:   body,
	}
}

// SearchText returns the lower-cased concatenation of the author name and the
// message body. This is the sole basis for matching and is never exposed to
// clients.
func (m Message) SearchText() string {
	return strings.ToLower(m.UserName + " " + m.Message)
}

// Validate checks that the message carries the fields the index requires.
// The body may legitimately be empty; id and user_name may not.
func (m Message) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.Required),
		validation.Field(&m.UserName, validation.Required),
	)
}
