package main

import (
	"os"
	"time"

	"github.com/banoqabil/jobhub/internal/ai/advisor"
	"github.com/banoqabil/jobhub/internal/seed"
	"github.com/banoqabil/jobhub/pkg/logx"
	"github.com/banoqabil/jobhub/portal/chat"
	"github.com/banoqabil/jobhub/portal/chat/chatapi"
	"github.com/banoqabil/jobhub/portal/company/companyapi"
	"github.com/banoqabil/jobhub/portal/company/companyinfra"
	"github.com/banoqabil/jobhub/portal/company/companysrv"
	"github.com/banoqabil/jobhub/portal/interaction"
	"github.com/banoqabil/jobhub/portal/interaction/interactionapi"
	"github.com/banoqabil/jobhub/portal/job/jobapi"
	"github.com/banoqabil/jobhub/portal/job/jobinfra"
	"github.com/banoqabil/jobhub/portal/job/jobsrv"
	"github.com/banoqabil/jobhub/portal/notification"
	"github.com/banoqabil/jobhub/portal/notification/notificationapi"
	"github.com/banoqabil/jobhub/portal/session"
	"github.com/banoqabil/jobhub/portal/session/sessionapi"
	"github.com/banoqabil/jobhub/portal/student/studentapi"
	"github.com/banoqabil/jobhub/portal/student/studentinfra"
	"github.com/banoqabil/jobhub/portal/student/studentsrv"
)

// Container holds all application dependencies
type Container struct {
	// Portal state
	InteractionLog     *interaction.Log
	NotificationCenter *notification.Center
	ChatService        *chat.Service

	// Entity Services
	StudentService *studentsrv.StudentService
	CompanyService *companysrv.CompanyService
	JobService     *jobsrv.JobService

	// Collaborators
	Advisor *advisor.Advisor

	// Session state machine
	Controller *session.Controller

	// API Handlers
	JobHandlers          *jobapi.Handlers
	StudentHandlers      *studentapi.Handlers
	CompanyHandlers      *companyapi.Handlers
	InteractionHandlers  *interactionapi.Handlers
	NotificationHandlers *notificationapi.Handlers
	ChatHandlers         *chatapi.Handlers
	SessionHandlers      *sessionapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initState()
	c.initServices()
	c.initController()
	c.initHandlers()
	return c
}

func (c *Container) initState() {
	c.InteractionLog = interaction.NewLog()
	c.NotificationCenter = notification.NewCenter()
	c.ChatService = chat.NewService()
}

func (c *Container) initServices() {
	now := time.Now()

	c.StudentService = studentsrv.NewStudentService(studentinfra.NewMemoryRepository(seed.Students()))
	c.CompanyService = companysrv.NewCompanyService(companyinfra.NewMemoryRepository(seed.Companies()))
	c.JobService = jobsrv.NewJobService(jobinfra.NewMemoryRepository(seed.Jobs(now)), seed.Categories())

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		logx.Warn("OPENAI_API_KEY is not set, career assistant will return fallback text")
	}
	c.Advisor = advisor.New(apiKey)
}

func (c *Container) initController() {
	c.Controller = session.NewController(
		c.StudentService,
		c.CompanyService,
		c.JobService,
		c.InteractionLog,
		c.NotificationCenter,
		c.ChatService,
		c.Advisor,
		toastTTL(),
	)
}

func (c *Container) initHandlers() {
	c.JobHandlers = jobapi.NewHandlers(c.JobService, c.Controller)
	c.StudentHandlers = studentapi.NewHandlers(c.StudentService, c.Controller)
	c.CompanyHandlers = companyapi.NewHandlers(c.CompanyService, c.Controller)
	c.InteractionHandlers = interactionapi.NewHandlers(c.InteractionLog)
	c.NotificationHandlers = notificationapi.NewHandlers(c.NotificationCenter, c.Controller)
	c.ChatHandlers = chatapi.NewHandlers(c.ChatService, c.Controller)
	c.SessionHandlers = sessionapi.NewHandlers(c.Controller)
}

func toastTTL() time.Duration {
	raw := os.Getenv("TOAST_TTL")
	if raw == "" {
		return session.DefaultToastTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		logx.Warnf("invalid TOAST_TTL %q, using default: %v", raw, err)
		return session.DefaultToastTTL
	}
	return ttl
}
