package pages

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/forms"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/shared"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

type handlers struct {
	api      *backend.Client
	sessions *session.Store
}

// SetupPagesRoutes wires the public informational pages.
func SetupPagesRoutes(app *fiber.App, api *backend.Client, sessions *session.Store) {
	h := &handlers{api: api, sessions: sessions}

	app.Get("/", h.renderHomePage)
	app.Get("/about", h.renderAboutPage)
	app.Get("/team", h.renderTeamPage)
	app.Get("/gallery", h.renderGalleryPage)
	app.Get("/contact", h.renderContactPage)
	app.Post("/contact", h.contactAPI)
}

func (h *handlers) renderHomePage(c *fiber.Ctx) error {
	return c.Render("pages/home", shared.View(c, h.sessions, "Home", "home"))
}

func (h *handlers) renderAboutPage(c *fiber.Ctx) error {
	return c.Render("pages/about", shared.View(c, h.sessions, "About Us", "about"))
}

func (h *handlers) renderTeamPage(c *fiber.Ctx) error {
	data := shared.View(c, h.sessions, "Our Team", "team")

	team, err := h.api.ListTeam(c.Context())
	if err != nil {
		log.Printf("pages: fetch team: %v", err)
		data["ErrorMessage"] = err.Error()
	}
	data["Team"] = team
	data["HasTeam"] = len(team) > 0
	return c.Render("pages/team", data)
}

func (h *handlers) renderGalleryPage(c *fiber.Ctx) error {
	data := shared.View(c, h.sessions, "Gallery", "gallery")

	categories, err := h.api.ListGalleryCategories(c.Context())
	if err != nil {
		log.Printf("pages: fetch gallery categories: %v", err)
		data["ErrorMessage"] = err.Error()
	}

	selected := c.Query("category")
	items, err := h.api.ListGalleryItems(c.Context(), selected)
	if err != nil {
		log.Printf("pages: fetch gallery items: %v", err)
		data["ErrorMessage"] = err.Error()
	}

	data["Categories"] = categories
	data["SelectedCategory"] = selected
	data["Items"] = items
	data["HasItems"] = len(items) > 0
	return c.Render("pages/gallery", data)
}

func (h *handlers) renderContactPage(c *fiber.Ctx) error {
	return c.Render("pages/contact", shared.View(c, h.sessions, "Contact Us", "contact"))
}

type contactForm struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,relaxed_email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

func (h *handlers) contactAPI(c *fiber.Ctx) error {
	var form contactForm
	if err := c.BodyParser(&form); err != nil {
		h.sessions.Flash(c, session.FlashError, "Invalid request.")
		return c.Redirect("/contact")
	}
	if msg := forms.Check(form); msg != "" {
		h.sessions.Flash(c, session.FlashError, msg)
		return c.Redirect("/contact")
	}

	err := h.api.SendContactMessage(c.Context(), models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	})
	if err != nil {
		h.sessions.Flash(c, session.FlashError, err.Error())
		return c.Redirect("/contact")
	}

	h.sessions.Flash(c, session.FlashSuccess, "Message sent. We'll get back to you shortly.")
	return c.Redirect("/contact")
}
