package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToastAutoDismissesAfterTTL(t *testing.T) {
	toast := newToaster(20 * time.Millisecond)
	toast.Show("Student added successfully!")

	msg, visible := toast.Current()
	assert.True(t, visible)
	assert.Equal(t, "Student added successfully!", msg)

	assert.Eventually(t, func() bool {
		_, visible := toast.Current()
		return !visible
	}, time.Second, 5*time.Millisecond)
}

func TestToastSupersedeCancelsPriorTimer(t *testing.T) {
	toast := newToaster(30 * time.Millisecond)

	toast.Show("first")
	time.Sleep(15 * time.Millisecond)
	toast.Show("second")

	// Past the first toast's would-be expiry: the first timer must not
	// have cleared the second toast.
	time.Sleep(20 * time.Millisecond)
	msg, visible := toast.Current()
	assert.True(t, visible)
	assert.Equal(t, "second", msg)

	assert.Eventually(t, func() bool {
		_, visible := toast.Current()
		return !visible
	}, time.Second, 5*time.Millisecond)
}

func TestToastStopClearsImmediately(t *testing.T) {
	toast := newToaster(time.Minute)
	toast.Show("lingering")

	toast.Stop()

	msg, visible := toast.Current()
	assert.False(t, visible)
	assert.Empty(t, msg)
}

func TestToastZeroTTLFallsBackToDefault(t *testing.T) {
	toast := newToaster(0)
	assert.Equal(t, DefaultToastTTL, toast.ttl)
}
