package recruitment

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/account"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/shared"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

type handlers struct {
	api      *backend.Client
	sessions *session.Store
}

// SetupRecruitmentRoutes wires the recruitment hub, the multi-step
// capability form and the candidate dashboard.
func SetupRecruitmentRoutes(app *fiber.App, api *backend.Client, sessions *session.Store) {
	h := &handlers{api: api, sessions: sessions}

	rec := app.Group("/recruitment")
	rec.Get("/", h.renderHubPage)
	rec.Get("/thank-you", h.renderThankYouPage)

	// The form and dashboard need a candidate session.
	rec.Use(account.RequireLogin(sessions))
	rec.Get("/apply", h.renderApplyPage)
	rec.Post("/apply/next", h.nextStepAPI)
	rec.Post("/apply/back", h.backStepAPI)
	rec.Post("/apply/submit", h.submitAPI)
	rec.Get("/dashboard", h.renderDashboardPage)
	rec.Post("/submission/delete", h.deleteSubmissionAPI)
	rec.Get("/profile", h.renderProfilePage)
}

func (h *handlers) renderHubPage(c *fiber.Ctx) error {
	return c.Render("recruitment/hub", shared.View(c, h.sessions, "Join Our Team", "recruitment"))
}

func (h *handlers) renderThankYouPage(c *fiber.Ctx) error {
	data := shared.View(c, h.sessions, "Thank You", "recruitment")
	data["RedirectTo"] = "/recruitment/dashboard"
	data["RedirectSeconds"] = 3
	return c.Render("recruitment/thank_you", data)
}

// renderApplyPage shows the current step, resuming saved progress. With
// ?edit=1 the candidate's existing submission seeds the form for a PATCH.
func (h *handlers) renderApplyPage(c *fiber.Ctx) error {
	stepIdx, sub, ok := h.sessions.FormProgress(c)

	if c.Query("edit") == "1" {
		auth := c.Locals("auth").(session.Auth)
		existing, err := h.api.GetMySubmission(c.Context(), auth.Access)
		if err != nil {
			return shared.BackendFailure(c, h.sessions, err, "/recruitment/dashboard")
		}
		sub = existing
		stepIdx = 0
		if err := h.sessions.SaveFormProgress(c, stepIdx, sub); err != nil {
			return err
		}
	} else if !ok {
		stepIdx = 0
		sub = models.CapabilitySubmission{}
	}

	return h.renderStep(c, clampStep(stepIdx), sub, "")
}

func (h *handlers) renderStep(c *fiber.Ctx, stepIdx int, sub models.CapabilitySubmission, errMsg string) error {
	s := steps[stepIdx]
	data := shared.View(c, h.sessions, "Capability Assessment", "recruitment")
	data["Step"] = stepIdx
	data["StepNumber"] = stepIdx + 1
	data["StepName"] = s.Name
	data["StepTitle"] = s.Title
	data["StepCount"] = len(steps)
	data["IsFirst"] = stepIdx == 0
	data["IsLast"] = stepIdx == lastStep()
	data["Submission"] = sub
	data["Editing"] = sub.ID != ""
	if errMsg != "" {
		data["FlashKind"] = session.FlashError
		data["FlashText"] = errMsg
	}
	return c.Render("recruitment/apply", data)
}

func (h *handlers) renderProfilePage(c *fiber.Ctx) error {
	auth := c.Locals("auth").(session.Auth)
	data := shared.View(c, h.sessions, "Profile", "recruitment")
	data["Profile"] = auth.User
	return c.Render("recruitment/profile", data)
}
