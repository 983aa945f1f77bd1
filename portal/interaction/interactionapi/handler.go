package interactionapi

import (
	"github.com/banoqabil/jobhub/portal/interaction"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for the admin activity views
type Handlers struct {
	log *interaction.Log
}

// NewHandlers creates a new interaction handlers instance
func NewHandlers(log *interaction.Log) *Handlers {
	return &Handlers{
		log: log,
	}
}

// ListInteractions returns the full ledger, newest first
// GET /api/interactions
func (h *Handlers) ListInteractions(c *fiber.Ctx) error {
	return c.JSON(interaction.ToResponses(h.log.All()))
}

// RecentInteractions returns the admin overview window
// GET /api/interactions/recent
func (h *Handlers) RecentInteractions(c *fiber.Ctx) error {
	return c.JSON(interaction.ToResponses(h.log.Recent()))
}

// ActiveSessions returns login entries only
// GET /api/interactions/sessions
func (h *Handlers) ActiveSessions(c *fiber.Ctx) error {
	return c.JSON(interaction.ToResponses(h.log.ActiveSessions()))
}

// Activity returns non-login entries only
// GET /api/interactions/activity
func (h *Handlers) Activity(c *fiber.Ctx) error {
	return c.JSON(interaction.ToResponses(h.log.Activity()))
}

// RegisterRoutes wires the interaction routes onto the app
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/interactions")

	api.Get("/", handlers.ListInteractions)
	api.Get("/recent", handlers.RecentInteractions)
	api.Get("/sessions", handlers.ActiveSessions)
	api.Get("/activity", handlers.Activity)
}
