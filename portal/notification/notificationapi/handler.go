package notificationapi

import (
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/notification"
	"github.com/gofiber/fiber/v2"
)

// RecipientResolver yields the profile id of the active session, used to
// scope the feed to the signed-in user.
type RecipientResolver interface {
	CurrentProfileID() (kernel.ProfileID, bool)
}

type Handlers struct {
	center   *notification.Center
	resolver RecipientResolver
}

func NewHandlers(center *notification.Center, resolver RecipientResolver) *Handlers {
	return &Handlers{center: center, resolver: resolver}
}

func (h *Handlers) ListMine(c *fiber.Ctx) error {
	me, ok := h.resolver.CurrentProfileID()
	if !ok {
		return c.JSON([]notification.Response{})
	}
	return c.JSON(notification.ToResponses(h.center.For(me), time.Now()))
}

func (h *Handlers) UnreadCount(c *fiber.Ctx) error {
	me, ok := h.resolver.CurrentProfileID()
	if !ok {
		return c.JSON(fiber.Map{"unread": 0})
	}
	return c.JSON(fiber.Map{"unread": h.center.UnreadCount(me)})
}

func (h *Handlers) MarkAllRead(c *fiber.Ctx) error {
	if me, ok := h.resolver.CurrentProfileID(); ok {
		h.center.MarkAllRead(me)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func RegisterRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api/notifications")
	api.Get("/", h.ListMine)
	api.Get("/unread", h.UnreadCount)
	api.Post("/read-all", h.MarkAllRead)
}
