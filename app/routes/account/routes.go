package account

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/shared"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

type handlers struct {
	api      *backend.Client
	sessions *session.Store
}

// SetupAccountRoutes wires the combined registration/login page, logout,
// email verification and password reset.
func SetupAccountRoutes(app *fiber.App, api *backend.Client, sessions *session.Store) {
	h := &handlers{api: api, sessions: sessions}

	acct := app.Group("/account")
	acct.Get("/register", h.renderRegisterPage)
	acct.Post("/register", h.registerAPI)
	acct.Post("/login", h.loginAPI)
	acct.Post("/logout", h.logoutAPI)
	acct.Get("/verify-email", h.verifyEmailPage)
	acct.Get("/password-reset", h.renderPasswordResetPage)
	acct.Post("/password-reset", h.passwordResetAPI)
}

// RequireLogin gates pages behind a local login hint. UX routing only:
// handlers behind it still call the backend, whose 401/403 forces a real
// logout.
func RequireLogin(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth, ok := sessions.Auth(c)
		if !ok {
			if isAPIRequest(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
			}
			return c.Redirect(shared.LoginRoute)
		}
		c.Locals("auth", auth)
		return c.Next()
	}
}

// RequireAdmin additionally checks the admin display hint.
func RequireAdmin(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth, ok := c.Locals("auth").(session.Auth)
		if !ok {
			auth, ok = sessions.Auth(c)
		}
		if !ok || !auth.User.IsAdmin() {
			if isAPIRequest(c) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
			}
			return c.Status(fiber.StatusForbidden).Render("error", fiber.Map{
				"Title":        "Access Forbidden - MBG Sales Training",
				"CurrentPage":  "",
				"ErrorCode":    "403",
				"ErrorTitle":   "Access Forbidden",
				"ErrorMessage": "You don't have permission to access this page.",
			})
		}
		c.Locals("auth", auth)
		return c.Next()
	}
}

func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}
