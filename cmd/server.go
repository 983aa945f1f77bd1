package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/banoqabil/jobhub/pkg/errx"
	"github.com/banoqabil/jobhub/pkg/logx"
	"github.com/banoqabil/jobhub/portal/chat/chatapi"
	"github.com/banoqabil/jobhub/portal/company/companyapi"
	"github.com/banoqabil/jobhub/portal/interaction/interactionapi"
	"github.com/banoqabil/jobhub/portal/job/jobapi"
	"github.com/banoqabil/jobhub/portal/notification/notificationapi"
	"github.com/banoqabil/jobhub/portal/session/sessionapi"
	"github.com/banoqabil/jobhub/portal/student/studentapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment
	if err := godotenv.Load(); err != nil {
		logx.Debugf("no .env file found: %v", err)
	}

	// 2. Initialize Logger
	logx.SetLevel(logLevel())
	logx.Info("Starting Bano Qabil Job Hub...")

	// 3. Initialize Dependency Container
	container := NewContainer()

	// 4. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Bano Qabil Job Hub API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 5. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 6. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 7. Register Routes

	// Session state machine: /api/session
	sessionapi.RegisterRoutes(app, container.SessionHandlers)

	// Entity stores: /api/jobs, /api/students, /api/companies
	jobapi.RegisterRoutes(app, container.JobHandlers)
	studentapi.RegisterRoutes(app, container.StudentHandlers)
	companyapi.RegisterRoutes(app, container.CompanyHandlers)

	// Admin activity views: /api/interactions
	interactionapi.RegisterRoutes(app, container.InteractionHandlers)

	// Session-scoped feeds: /api/notifications, /api/chat
	notificationapi.RegisterRoutes(app, container.NotificationHandlers)
	chatapi.RegisterRoutes(app, container.ChatHandlers)

	// 8. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		logx.Infof("Server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

func logLevel() logx.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return logx.LevelDebug
	case "warn":
		return logx.LevelWarn
	case "error":
		return logx.LevelError
	default:
		return logx.LevelInfo
	}
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
