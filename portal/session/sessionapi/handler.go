package sessionapi

import (
	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/company"
	"github.com/banoqabil/jobhub/portal/session"
	"github.com/banoqabil/jobhub/portal/student"
	"github.com/gofiber/fiber/v2"
)

// Handlers exposes the session state machine over HTTP.
type Handlers struct {
	controller *session.Controller
}

func NewHandlers(controller *session.Controller) *Handlers {
	return &Handlers{controller: controller}
}

// GetState returns the current session projection
// GET /api/session
func (h *Handlers) GetState(c *fiber.Ctx) error {
	msg, visible := h.controller.Toast()
	return c.JSON(session.ToStateResponse(h.controller.Snapshot(), msg, visible))
}

// Login opens a sitting for the chosen role
// POST /api/session/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req session.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return session.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	state, err := h.controller.Login(kernel.Role(req.Role))
	if err != nil {
		return err
	}

	msg, visible := h.controller.Toast()
	return c.JSON(session.ToStateResponse(state, msg, visible))
}

// Logout tears the sitting down
// POST /api/session/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	state := h.controller.Logout()
	return c.JSON(session.ToStateResponse(state, "", false))
}

// Navigate switches screens
// POST /api/session/navigate
func (h *Handlers) Navigate(c *fiber.Ctx) error {
	var req session.NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return session.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	state, err := h.controller.Navigate(session.ViewState(req.View))
	if err != nil {
		return err
	}

	msg, visible := h.controller.Toast()
	return c.JSON(session.ToStateResponse(state, msg, visible))
}

// CompleteStudentProfile finishes student setup
// POST /api/session/profile/student
func (h *Handlers) CompleteStudentProfile(c *fiber.Ctx) error {
	var draft student.StudentDraft
	if err := c.BodyParser(&draft); err != nil {
		return session.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.controller.CompleteStudentProfile(c.Context(), draft)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// CompleteCompanyProfile finishes partner setup
// POST /api/session/profile/company
func (h *Handlers) CompleteCompanyProfile(c *fiber.Ctx) error {
	var draft company.CompanyDraft
	if err := c.BodyParser(&draft); err != nil {
		return session.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.controller.CompleteCompanyProfile(c.Context(), draft)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// SelectJob opens a listing's detail screen
// POST /api/session/select/job/:id
func (h *Handlers) SelectJob(c *fiber.Ctx) error {
	selected, err := h.controller.SelectJob(c.Context(), kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(selected)
}

// SelectStudent opens a student's CV screen
// POST /api/session/select/student/:studentId
func (h *Handlers) SelectStudent(c *fiber.Ctx) error {
	selected, err := h.controller.SelectStudent(c.Context(), kernel.StudentID(c.Params("studentId")))
	if err != nil {
		return err
	}
	return c.JSON(selected)
}

// Apply submits an application for the selected listing
// POST /api/session/apply
func (h *Handlers) Apply(c *fiber.Ctx) error {
	applied, err := h.controller.Apply(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"applied": applied})
}

// Hire sends a hire offer to a student
// POST /api/session/hire/:studentId
func (h *Handlers) Hire(c *fiber.Ctx) error {
	thread, err := h.controller.Hire(c.Context(), kernel.StudentID(c.Params("studentId")))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"threadId": thread.ID.String()})
}

// GetCareerAdvice asks the assistant for guidance
// POST /api/session/advice
func (h *Handlers) GetCareerAdvice(c *fiber.Ctx) error {
	advice, err := h.controller.GetCareerAdvice(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(session.AdviceResponse{Advice: advice})
}

// MatchSelectedJob scores the selected listing against the student
// POST /api/session/match
func (h *Handlers) MatchSelectedJob(c *fiber.Ctx) error {
	percentage, explanation, err := h.controller.MatchSelectedJob(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(session.MatchResponse{Percentage: percentage, Explanation: explanation})
}

// Dashboard returns the admin overview totals
// GET /api/session/dashboard
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	stats, err := h.controller.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// RegisterRoutes wires the session routes onto the app
func RegisterRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api/session")

	api.Get("/", h.GetState)
	api.Post("/login", h.Login)
	api.Post("/logout", h.Logout)
	api.Post("/navigate", h.Navigate)
	api.Post("/profile/student", h.CompleteStudentProfile)
	api.Post("/profile/company", h.CompleteCompanyProfile)
	api.Post("/select/job/:id", h.SelectJob)
	api.Post("/select/student/:studentId", h.SelectStudent)
	api.Post("/apply", h.Apply)
	api.Post("/hire/:studentId", h.Hire)
	api.Post("/advice", h.GetCareerAdvice)
	api.Post("/match", h.MatchSelectedJob)
	api.Get("/dashboard", h.Dashboard)
}
