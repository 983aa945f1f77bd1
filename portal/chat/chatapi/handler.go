package chatapi

import (
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/chat"
	"github.com/gofiber/fiber/v2"
)

// Messenger is the session-side relay: it resolves the acting profile
// and routes sends through the controller so they land in the
// interaction log.
type Messenger interface {
	CurrentParticipant() (chat.Participant, bool)
	OpenThread(other chat.Participant) (chat.Thread, bool, error)
	SendMessage(threadID kernel.ThreadID, text string) (chat.Message, bool)
}

type Handlers struct {
	service   *chat.Service
	messenger Messenger
}

func NewHandlers(service *chat.Service, messenger Messenger) *Handlers {
	return &Handlers{service: service, messenger: messenger}
}

func (h *Handlers) ListThreads(c *fiber.Ctx) error {
	me, ok := h.messenger.CurrentParticipant()
	if !ok {
		return c.JSON([]chat.ThreadResponse{})
	}
	return c.JSON(chat.ToResponses(h.service.ThreadsFor(me.ID), time.Now()))
}

func (h *Handlers) GetThread(c *fiber.Ctx) error {
	threadID := kernel.NewThreadID(c.Params("id"))
	thread, found := h.service.ThreadByID(threadID)
	if !found {
		return chat.ErrThreadNotFound().WithDetail("thread_id", threadID.String())
	}
	resp := thread.ToResponse(time.Now())
	return c.JSON(resp)
}

// OpenThread finds or starts a conversation with the counterpart named
// in the request body.
func (h *Handlers) OpenThread(c *fiber.Ctx) error {
	var req chat.OpenThreadRequest
	if err := c.BodyParser(&req); err != nil {
		return chat.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if req.OtherID == "" {
		return chat.ErrInvalidRequest().WithDetail("other_id", "missing or empty")
	}

	other := chat.Participant{
		ID:   kernel.NewProfileID(req.OtherID),
		Name: req.OtherName,
		Role: kernel.Role(req.OtherRole),
	}

	thread, created, err := h.messenger.OpenThread(other)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	resp := thread.ToResponse(time.Now())
	return c.Status(status).JSON(resp)
}

func (h *Handlers) SendMessage(c *fiber.Ctx) error {
	var req chat.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return chat.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	threadID := kernel.NewThreadID(c.Params("id"))
	msg, sent := h.messenger.SendMessage(threadID, req.Text)
	if !sent {
		// Blank text, a stale thread id, or a profile-less sitting is
		// dropped quietly, mirroring the portal UI which disables the
		// send button in those states.
		return c.SendStatus(fiber.StatusNoContent)
	}

	resp := msg.ToResponse(time.Now())
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func RegisterRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api/chat")
	api.Get("/threads", h.ListThreads)
	api.Post("/threads", h.OpenThread)
	api.Get("/threads/:id", h.GetThread)
	api.Post("/threads/:id/messages", h.SendMessage)
}
