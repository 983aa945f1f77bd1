package notification

import (
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
)

// Type classifies an alert.
type Type string

const (
	TypeHireOffer        Type = "HIRE_OFFER"
	TypeApplicationAlert Type = "APPLICATION_ALERT"
	TypeNewMessage       Type = "NEW_MESSAGE"
)

// BroadcastRecipient receives application alerts whose listing names a
// company the store cannot resolve.
const BroadcastRecipient kernel.ProfileID = "all-companies"

// Notification is a targeted alert derived from an interaction. Only the
// read flag ever changes after creation.
type Notification struct {
	ID          kernel.NotificationID `json:"id"`
	RecipientID kernel.ProfileID      `json:"recipient_id"`
	SenderName  string                `json:"sender_name"`
	Message     string                `json:"message"`
	Type        Type                  `json:"type"`
	CreatedAt   time.Time             `json:"created_at"`
	IsRead      bool                  `json:"is_read"`
}

// CreatedLabel returns the display form of the creation time.
func (n *Notification) CreatedLabel(now time.Time) string {
	return kernel.FormatRelative(n.CreatedAt, now)
}
