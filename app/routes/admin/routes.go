package admin

import (
	"log"

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

// SetupAdminRoutes wires the submission review dashboard. The middleware
// gate is a display hint; the backend's 401/403 on each call is the real
// enforcement and triggers a forced logout.
func SetupAdminRoutes(app *fiber.App, api *backend.Client, sessions *session.Store) {
	h := &handlers{api: api, sessions: sessions}

	adm := app.Group("/admin")
	adm.Use(account.RequireLogin(sessions))
	adm.Use(account.RequireAdmin(sessions))
	adm.Get("/", h.renderDashboardPage)
	adm.Post("/submissions/:id/status", h.transitionStatusAPI)
	adm.Get("/export.csv", h.exportCSVAPI)
}

func filterFromQuery(c *fiber.Ctx) Filter {
	return Filter{
		Search:     c.Query("q"),
		Status:     c.Query("status"),
		Experience: c.Query("experience"),
		Role:       c.Query("role"),
	}
}

func (h *handlers) fetchFiltered(c *fiber.Ctx) ([]models.CapabilitySubmission, Filter, error) {
	auth := c.Locals("auth").(session.Auth)
	filter := filterFromQuery(c)

	subs, err := h.api.ListSubmissions(c.Context(), auth.Access)
	if err != nil {
		return nil, filter, err
	}
	return filter.Apply(subs), filter, nil
}

func (h *handlers) renderDashboardPage(c *fiber.Ctx) error {
	filtered, filter, err := h.fetchFiltered(c)
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/")
	}

	// Distinct roles across the filtered view feed the role filter dropdown.
	roleSet := map[string]bool{}
	for _, sub := range filtered {
		for _, r := range sub.RoleInterests {
			roleSet[r.Role] = true
		}
	}
	roles := make([]string, 0, len(roleSet))
	for role := range roleSet {
		roles = append(roles, role)
	}

	data := shared.View(c, h.sessions, "Admin Dashboard", "admin")
	data["Submissions"] = filtered
	// The badge reflects the filtered count, not the unfiltered total.
	data["SubmissionCount"] = len(filtered)
	data["Filter"] = filter
	data["Filtered"] = !filter.Empty()
	data["Roles"] = roles
	data["Statuses"] = []string{
		models.SubmissionStatusPending,
		models.SubmissionStatusReviewed,
		models.SubmissionStatusAccepted,
		models.SubmissionStatusRejected,
	}
	return c.Render("admin/dashboard", data)
}

// transitionStatusAPI moves one submission to a new review status, then
// lands back on the filtered view.
func (h *handlers) transitionStatusAPI(c *fiber.Ctx) error {
	auth := c.Locals("auth").(session.Auth)
	id := c.Params("id")
	status := c.FormValue("status")

	switch status {
	case models.SubmissionStatusPending, models.SubmissionStatusReviewed,
		models.SubmissionStatusAccepted, models.SubmissionStatusRejected:
	default:
		h.sessions.Flash(c, session.FlashError, "Unknown status.")
		return c.Redirect("/admin")
	}

	csrf, err := h.api.CSRFToken(c.Context())
	if err != nil {
		log.Printf("admin: csrf token fetch failed, continuing without: %v", err)
	}

	if err := h.api.TransitionSubmission(c.Context(), auth.Access, csrf, id, status); err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/admin")
	}

	h.sessions.Flash(c, session.FlashSuccess, "Submission marked "+status+".")
	return c.Redirect("/admin?" + string(c.Request().URI().QueryString()))
}

// exportCSVAPI downloads the currently filtered view.
func (h *handlers) exportCSVAPI(c *fiber.Ctx) error {
	filtered, _, err := h.fetchFiltered(c)
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/admin")
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="capability-submissions.csv"`)
	return c.SendString(ExportCSV(filtered))
}
