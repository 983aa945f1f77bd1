package session

import (
	"sync"
	"time"
)

// DefaultToastTTL is how long a toast stays up before auto-dismissing.
const DefaultToastTTL = 3 * time.Second

// toaster holds the single transient success banner. Showing a new toast
// cancels the previous dismiss timer, so a superseded toast can never
// clear its successor.
type toaster struct {
	mu      sync.Mutex
	ttl     time.Duration
	message string
	visible bool
	timer   *time.Timer
}

func newToaster(ttl time.Duration) *toaster {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &toaster{ttl: ttl}
}

// Show replaces the current toast and arms a fresh dismiss timer.
func (t *toaster) Show(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.message = message
	t.visible = true
	t.timer = time.AfterFunc(t.ttl, func() { t.dismiss(message) })
}

// dismiss clears the toast only if it is still the one the timer was
// armed for.
func (t *toaster) dismiss(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.visible && t.message == message {
		t.message = ""
		t.visible = false
		t.timer = nil
	}
}

// Current returns the toast text and whether it is showing.
func (t *toaster) Current() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message, t.visible
}

// Stop cancels the pending timer and clears the toast. Used at teardown.
func (t *toaster) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.message = ""
	t.visible = false
}
