package notification

import (
	"fmt"
	"sync"
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/google/uuid"
)

// Center owns the session-scoped alert sequence. Alerts are created as
// side effects of APPLICATION and HIRING interactions; the only
// permitted mutation is flipping IsRead, in bulk per recipient.
type Center struct {
	mu            sync.RWMutex
	notifications []Notification
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{}
}

// NotifyApplication alerts the company (or the broadcast recipient) that
// a student applied to one of its listings.
func (c *Center) NotifyApplication(recipientID kernel.ProfileID, studentName, jobTitle string) Notification {
	return c.push(Notification{
		RecipientID: recipientID,
		SenderName:  studentName,
		Message:     fmt.Sprintf("%s applied for %s", studentName, jobTitle),
		Type:        TypeApplicationAlert,
	})
}

// NotifyHire alerts the student that a company sent a hire offer.
func (c *Center) NotifyHire(studentID kernel.ProfileID, companyName string) Notification {
	return c.push(Notification{
		RecipientID: studentID,
		SenderName:  companyName,
		Message:     fmt.Sprintf("%s wants to hire you! Check your messages.", companyName),
		Type:        TypeHireOffer,
	})
}

// For returns the alerts addressed to the given profile, newest first.
func (c *Center) For(profileID kernel.ProfileID) []Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	mine := make([]Notification, 0, len(c.notifications))
	for _, n := range c.notifications {
		if n.RecipientID == profileID {
			mine = append(mine, n)
		}
	}
	return mine
}

// UnreadCount counts the profile's unread alerts.
func (c *Center) UnreadCount(profileID kernel.ProfileID) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, n := range c.notifications {
		if n.RecipientID == profileID && !n.IsRead {
			count++
		}
	}
	return count
}

// MarkAllRead flips every alert addressed to the profile, not just a
// displayed subset. Calling it again is a no-op.
func (c *Center) MarkAllRead(profileID kernel.ProfileID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]Notification, len(c.notifications))
	copy(next, c.notifications)
	for i := range next {
		if next[i].RecipientID == profileID {
			next[i].IsRead = true
		}
	}
	c.notifications = next
}

// Clear wipes the alert sequence at session teardown.
func (c *Center) Clear() {
	c.mu.Lock()
	c.notifications = nil
	c.mu.Unlock()
}

// Len returns the total number of alerts across all recipients.
func (c *Center) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.notifications)
}

func (c *Center) push(n Notification) Notification {
	n.ID = kernel.NewNotificationID(uuid.NewString())
	n.CreatedAt = time.Now()

	c.mu.Lock()
	next := make([]Notification, 0, len(c.notifications)+1)
	next = append(next, n)
	next = append(next, c.notifications...)
	c.notifications = next
	c.mu.Unlock()

	return n
}
