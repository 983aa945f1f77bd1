package chat

import (
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
)

// Participant identifies one side of a conversation.
type Participant struct {
	ID   kernel.ProfileID `json:"id"`
	Name string           `json:"name"`
	Role kernel.Role      `json:"role"`
}

// Message is one chat entry, append-only within its thread.
type Message struct {
	ID         kernel.MessageID `json:"id"`
	SenderID   kernel.ProfileID `json:"sender_id"`
	SenderName string           `json:"sender_name"`
	Text       string           `json:"text"`
	SentAt     time.Time        `json:"sent_at"`
}

// Thread is a two-party conversation between a student and a company.
// At most one thread exists per counterpart.
type Thread struct {
	ID           kernel.ThreadID `json:"id"`
	Participants [2]Participant  `json:"participants"`
	LastMessage  string          `json:"last_message"`
	Messages     []Message       `json:"messages"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// Has reports whether the profile takes part in the thread.
func (t *Thread) Has(id kernel.ProfileID) bool {
	return t.Participants[0].ID == id || t.Participants[1].ID == id
}

// Counterpart returns the other participant from the given profile's
// point of view.
func (t *Thread) Counterpart(id kernel.ProfileID) Participant {
	if t.Participants[0].ID == id {
		return t.Participants[1]
	}
	return t.Participants[0]
}

// SentLabel returns the display form of the message's send time.
func (m *Message) SentLabel(now time.Time) string {
	return kernel.FormatRelative(m.SentAt, now)
}
