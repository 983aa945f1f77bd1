package interaction

import (
	"sync"
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/google/uuid"
)

// recentWindow is how many entries the admin overview shows.
const recentWindow = 5

// Log is the portal's append-only interaction ledger, newest first.
// Prepending on record is the only ordering mechanism; entries are never
// re-sorted by timestamp.
type Log struct {
	mu      sync.RWMutex
	entries []Interaction
}

// NewLog creates an empty ledger.
func NewLog() *Log {
	return &Log{}
}

// Record stamps the entry and prepends it to the ledger, then returns it.
func (l *Log) Record(entryType Type, fromID kernel.ProfileID, fromName string, toID kernel.ProfileID, toName, itemName string) Interaction {
	entry := Interaction{
		ID:         kernel.NewInteractionID(uuid.NewString()),
		Type:       entryType,
		FromID:     fromID,
		FromName:   fromName,
		ToID:       toID,
		ToName:     toName,
		ItemName:   itemName,
		OccurredAt: time.Now(),
	}

	l.mu.Lock()
	next := make([]Interaction, 0, len(l.entries)+1)
	next = append(next, entry)
	next = append(next, l.entries...)
	l.entries = next
	l.mu.Unlock()

	return entry
}

// All returns every entry, newest first.
func (l *Log) All() []Interaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries
}

// Recent returns the newest entries for the admin overview.
func (l *Log) Recent() []Interaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) <= recentWindow {
		return l.entries
	}
	return l.entries[:recentWindow]
}

// ActiveSessions returns the login entries, newest first.
func (l *Log) ActiveSessions() []Interaction {
	return l.filter(func(i *Interaction) bool { return i.IsLogin() })
}

// Activity returns the non-login entries, newest first.
func (l *Log) Activity() []Interaction {
	return l.filter(func(i *Interaction) bool { return !i.IsLogin() })
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

func (l *Log) filter(keep func(*Interaction) bool) []Interaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matched := make([]Interaction, 0, len(l.entries))
	for i := range l.entries {
		if keep(&l.entries[i]) {
			matched = append(matched, l.entries[i])
		}
	}
	return matched
}
