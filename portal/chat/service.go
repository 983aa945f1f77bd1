package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/google/uuid"
)

// Service owns the session-scoped thread collection. Thread creation is
// idempotent per counterpart id; messages only ever append.
type Service struct {
	mu      sync.RWMutex
	threads []Thread
}

// NewService creates an empty messaging service.
func NewService() *Service {
	return &Service{}
}

// GetOrCreateThread returns the existing thread with the counterpart if
// one exists, otherwise prepends a fresh empty thread. Lookup is keyed
// on the counterpart's id only.
func (s *Service) GetOrCreateThread(self, other Participant) (Thread, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.threads {
		if s.threads[i].Has(other.ID) {
			return s.threads[i], false
		}
	}

	thread := Thread{
		ID:           kernel.NewThreadID(uuid.NewString()),
		Participants: [2]Participant{self, other},
		Messages:     []Message{},
	}

	next := make([]Thread, 0, len(s.threads)+1)
	next = append(next, thread)
	next = append(next, s.threads...)
	s.threads = next

	return thread, true
}

// SendMessage appends a message and refreshes the thread preview.
// Blank text (after trimming) or an unknown thread is a silent no-op:
// the portal is a local simulation with nothing to surface the failure.
func (s *Service) SendMessage(threadID kernel.ThreadID, sender Participant, text string) (Message, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Message{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.threads {
		if s.threads[i].ID != threadID {
			continue
		}

		msg := Message{
			ID:         kernel.NewMessageID(uuid.NewString()),
			SenderID:   sender.ID,
			SenderName: sender.Name,
			Text:       trimmed,
			SentAt:     time.Now(),
		}
		s.threads[i].Messages = append(s.threads[i].Messages, msg)
		s.threads[i].LastMessage = trimmed
		return msg, true
	}

	return Message{}, false
}

// ThreadsFor returns the threads the profile takes part in, newest first.
func (s *Service) ThreadsFor(profileID kernel.ProfileID) []Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mine := make([]Thread, 0, len(s.threads))
	for i := range s.threads {
		if s.threads[i].Has(profileID) {
			mine = append(mine, s.threads[i])
		}
	}
	return mine
}

// ThreadByID retrieves one thread.
func (s *Service) ThreadByID(threadID kernel.ThreadID) (Thread, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.threads {
		if s.threads[i].ID == threadID {
			return s.threads[i], true
		}
	}
	return Thread{}, false
}

// Clear wipes every thread at session teardown.
func (s *Service) Clear() {
	s.mu.Lock()
	s.threads = nil
	s.mu.Unlock()
}

// Len returns the number of threads.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.threads)
}
