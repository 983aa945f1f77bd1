package chat

import (
	"testing"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleParticipants() (Participant, Participant) {
	company := Participant{
		ID:   kernel.NewProfileID("company-1"),
		Name: "Innovatech",
		Role: kernel.RoleCompany,
	}
	student := Participant{
		ID:   kernel.NewProfileID("student-1"),
		Name: "Alex Doe",
		Role: kernel.RoleStudent,
	}
	return company, student
}

func TestGetOrCreateThreadIsIdempotent(t *testing.T) {
	svc := NewService()
	company, student := sampleParticipants()

	first, created := svc.GetOrCreateThread(company, student)
	require.True(t, created)
	require.Equal(t, 1, svc.Len())

	again, created := svc.GetOrCreateThread(company, student)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 1, svc.Len())
}

func TestGetOrCreateThreadPerCounterpart(t *testing.T) {
	svc := NewService()
	company, student := sampleParticipants()
	other := Participant{ID: kernel.NewProfileID("student-2"), Name: "Maria Garcia", Role: kernel.RoleStudent}

	t1, _ := svc.GetOrCreateThread(company, student)
	t2, created := svc.GetOrCreateThread(company, other)

	require.True(t, created)
	assert.NotEqual(t, t1.ID, t2.ID)
	assert.Equal(t, 2, svc.Len())

	// Newest thread is listed first.
	threads := svc.ThreadsFor(company.ID)
	require.Len(t, threads, 2)
	assert.Equal(t, t2.ID, threads[0].ID)
}

func TestSendMessageAppendsAndUpdatesPreview(t *testing.T) {
	svc := NewService()
	company, student := sampleParticipants()
	thread, _ := svc.GetOrCreateThread(company, student)

	msg, ok := svc.SendMessage(thread.ID, company, "We'd like to interview you.")
	require.True(t, ok)
	assert.Equal(t, company.ID, msg.SenderID)
	assert.Equal(t, "We'd like to interview you.", msg.Text)

	got, found := svc.ThreadByID(thread.ID)
	require.True(t, found)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "We'd like to interview you.", got.LastMessage)
}

func TestSendMessageIgnoresBlankText(t *testing.T) {
	svc := NewService()
	company, student := sampleParticipants()
	thread, _ := svc.GetOrCreateThread(company, student)

	_, ok := svc.SendMessage(thread.ID, company, "   ")
	assert.False(t, ok)

	got, _ := svc.ThreadByID(thread.ID)
	assert.Empty(t, got.Messages)
	assert.Empty(t, got.LastMessage)
}

func TestSendMessageIgnoresUnknownThread(t *testing.T) {
	svc := NewService()
	company, _ := sampleParticipants()

	_, ok := svc.SendMessage(kernel.NewThreadID("missing"), company, "hello")
	assert.False(t, ok)
	assert.Equal(t, 0, svc.Len())
}

func TestClearDropsAllThreads(t *testing.T) {
	svc := NewService()
	company, student := sampleParticipants()
	svc.GetOrCreateThread(company, student)

	svc.Clear()

	assert.Equal(t, 0, svc.Len())
	assert.Empty(t, svc.ThreadsFor(company.ID))
}

func TestCounterpartResolvesOtherParty(t *testing.T) {
	svc := NewService()
	company, student := sampleParticipants()
	thread, _ := svc.GetOrCreateThread(company, student)

	other := thread.Counterpart(company.ID)
	assert.Equal(t, student.ID, other.ID)
}
