package programs

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/payments"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/shared"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

type handlers struct {
	api       *backend.Client
	sessions  *session.Store
	initiator *payments.Initiator
}

// SetupProgramsRoutes wires the program catalogue and registration pages.
func SetupProgramsRoutes(app *fiber.App, api *backend.Client, sessions *session.Store, initiator *payments.Initiator) {
	h := &handlers{api: api, sessions: sessions, initiator: initiator}

	app.Get("/programs", h.renderProgramsPage)
	app.Get("/programs/:id", h.renderProgramDetailPage)
	app.Get("/programs/:id/register", h.renderRegisterPage)
	app.Post("/programs/:id/register", h.registerAPI)
	app.Post("/programs/registrations/:id/pay", h.retryPaymentAPI)
}

func (h *handlers) renderProgramsPage(c *fiber.Ctx) error {
	data := shared.View(c, h.sessions, "Programs", "programs")

	programs, err := h.api.ListPrograms(c.Context())
	if err != nil {
		log.Printf("programs: fetch list: %v", err)
		data["ErrorMessage"] = err.Error()
	}

	// Group by category for the catalogue view.
	byCategory := map[string]int{}
	for _, p := range programs {
		byCategory[p.Category]++
	}

	data["Programs"] = programs
	data["HasPrograms"] = len(programs) > 0
	data["CategoryCounts"] = byCategory
	return c.Render("programs/index", data)
}

func (h *handlers) renderProgramDetailPage(c *fiber.Ctx) error {
	program, err := h.api.GetProgram(c.Context(), c.Params("id"))
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/programs")
	}

	data := shared.View(c, h.sessions, program.Title, "programs")
	data["Program"] = program
	return c.Render("programs/detail", data)
}

func (h *handlers) renderRegisterPage(c *fiber.Ctx) error {
	program, err := h.api.GetProgram(c.Context(), c.Params("id"))
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/programs")
	}

	data := shared.View(c, h.sessions, "Register - "+program.Title, "programs")
	data["Program"] = program
	data["Form"] = registerForm{}
	return c.Render("programs/register", data)
}
