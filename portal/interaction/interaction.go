package interaction

import (
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
)

// Type classifies an audit-log entry.
type Type string

const (
	TypeApplication Type = "APPLICATION" // student applied to a listing
	TypeHiring      Type = "HIRING"      // company sent a hire offer
	TypeLogin       Type = "LOGIN"       // someone entered the portal
	TypeMessage     Type = "MESSAGE"     // chat message sent
)

// Interaction is one immutable audit-log entry. Entries are never
// mutated or deleted once recorded.
type Interaction struct {
	ID         kernel.InteractionID `json:"id"`
	Type       Type                 `json:"type"`
	FromID     kernel.ProfileID     `json:"from_id"`
	FromName   string               `json:"from_name"`
	ToID       kernel.ProfileID     `json:"to_id,omitempty"`
	ToName     string               `json:"to_name,omitempty"`
	ItemName   string               `json:"item_name"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsLogin reports whether the entry records a portal login.
func (i *Interaction) IsLogin() bool {
	return i.Type == TypeLogin
}

// OccurredLabel returns the display form of the entry's timestamp.
// Log ordering never consults this; insertion order is the truth.
func (i *Interaction) OccurredLabel(now time.Time) string {
	return kernel.FormatRelative(i.OccurredAt, now)
}
