package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/config"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/payments"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/account"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/admin"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/checkout"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/events"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/pages"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/programs"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/recruitment"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

// customErrorHandler renders HTML error pages for web requests and JSON
// for /api paths.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - MBG Sales Training",
			"CurrentPage": "",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - MBG Sales Training",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please sign in to access this page.",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - MBG Sales Training",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this page.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - MBG Sales Training",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	api := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)
	sessions := session.New(cfg.SessionCookieName, cfg.SessionTTL)
	sessions.Subscribe(session.LogChanges)

	initiator := payments.NewInitiator(api)
	poller := payments.NewPoller(api.PaymentStatus, cfg.PaymentPollEvery, cfg.PaymentPollLimit)

	// Template engine
	engine := html.New(cfg.TemplateDir, ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", cfg.StaticDir)

	// Routes
	pages.SetupPagesRoutes(app, api, sessions)
	account.SetupAccountRoutes(app, api, sessions)
	events.SetupEventsRoutes(app, api, sessions, initiator)
	programs.SetupProgramsRoutes(app, api, sessions, initiator)
	checkout.SetupCheckoutRoutes(app, api, sessions, initiator, poller)
	recruitment.SetupRecruitmentRoutes(app, api, sessions)
	admin.SetupAdminRoutes(app, api, sessions)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on %s (backend %s)", cfg.ListenAddr, cfg.BackendBaseURL)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
