package events

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/payments"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/shared"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

type handlers struct {
	api       *backend.Client
	sessions  *session.Store
	initiator *payments.Initiator
}

// SetupEventsRoutes wires the event list, detail and registration pages.
func SetupEventsRoutes(app *fiber.App, api *backend.Client, sessions *session.Store, initiator *payments.Initiator) {
	h := &handlers{api: api, sessions: sessions, initiator: initiator}

	app.Get("/events", h.renderEventsPage)
	app.Get("/events/:id", h.renderEventDetailPage)
	app.Get("/events/:id/register", h.renderRegisterPage)
	app.Post("/events/:id/register", h.registerAPI)
	app.Post("/events/registrations/:id/pay", h.retryPaymentAPI)
}

type eventGroup struct {
	Month  string
	Events []models.Event
}

func (h *handlers) renderEventsPage(c *fiber.Ctx) error {
	data := shared.View(c, h.sessions, "Events", "events")

	events, err := h.api.ListEvents(c.Context())
	if err != nil {
		log.Printf("events: fetch list: %v", err)
		data["ErrorMessage"] = err.Error()
	}

	// Group events by Month Year, preserving backend order.
	var groups []eventGroup
	currentMonth := ""
	var current *eventGroup
	for _, event := range events {
		monthYear := monthOf(event.StartDate)
		if monthYear != currentMonth {
			if current != nil {
				groups = append(groups, *current)
			}
			currentMonth = monthYear
			current = &eventGroup{Month: monthYear, Events: []models.Event{event}}
		} else {
			current.Events = append(current.Events, event)
		}
	}
	if current != nil {
		groups = append(groups, *current)
	}

	data["EventGroups"] = groups
	data["Events"] = events
	data["HasEvents"] = len(events) > 0
	return c.Render("events/index", data)
}

func monthOf(startDate string) string {
	t, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return "Upcoming"
	}
	return t.Format("January 2006")
}

func (h *handlers) renderEventDetailPage(c *fiber.Ctx) error {
	event, err := h.api.GetEvent(c.Context(), c.Params("id"))
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/events")
	}

	data := shared.View(c, h.sessions, event.Title, "events")
	data["Event"] = event
	data["CanRegister"] = event.AcceptsRegistrations()
	return c.Render("events/detail", data)
}

func (h *handlers) renderRegisterPage(c *fiber.Ctx) error {
	event, err := h.api.GetEvent(c.Context(), c.Params("id"))
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/events")
	}
	if !event.AcceptsRegistrations() {
		h.sessions.Flash(c, session.FlashError, "Registration for this event is closed.")
		return c.Redirect("/events/" + event.ID)
	}

	data := shared.View(c, h.sessions, "Register - "+event.Title, "events")
	data["Event"] = event
	data["Form"] = registerForm{}
	return c.Render("events/register", data)
}
