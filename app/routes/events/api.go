package events

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/forms"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/shared"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

type registerForm struct {
	FullName string `json:"full_name" form:"full_name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,relaxed_email"`
	Phone    string `json:"phone" form:"phone" validate:"required"`
	Company  string `json:"company" form:"company" validate:"required"`
	JobTitle string `json:"job_title" form:"job_title" validate:"required"`
}

// registerAPI creates the registration and, when the event is paid, hands
// off to the payment initiator exactly once with the returned id.
func (h *handlers) registerAPI(c *fiber.Ctx) error {
	event, err := h.api.GetEvent(c.Context(), c.Params("id"))
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/events")
	}

	var form registerForm
	if err := c.BodyParser(&form); err != nil {
		h.sessions.Flash(c, session.FlashError, "Invalid request.")
		return c.Redirect("/events/" + event.ID + "/register")
	}

	// Client-side gate: an invalid form never reaches the backend.
	if msg := forms.Check(form); msg != "" {
		return h.rerenderForm(c, event, form, msg)
	}

	created, err := h.api.CreateEventRegistration(c.Context(), models.EventRegistration{
		EventID:  event.ID,
		FullName: form.FullName,
		Email:    form.Email,
		Phone:    form.Phone,
		Company:  form.Company,
		JobTitle: form.JobTitle,
	})
	if err != nil {
		// The form stays editable for a manual retry; no automatic one.
		return h.rerenderForm(c, event, form, err.Error())
	}

	// PaymentRequired is derived from the event's free flag at read time.
	if event.IsFree || !created.PaymentRequired {
		data := shared.View(c, h.sessions, "Registered - "+event.Title, "events")
		data["Event"] = event
		data["Registration"] = created
		return c.Render("events/registered", data)
	}

	return h.startPayment(c, event, created.ID)
}

// startPayment persists the resume keys, then leaves the application for
// the provider. Session first: the redirect is a full page navigation.
func (h *handlers) startPayment(c *fiber.Ctx, event models.Event, registrationID string) error {
	payment, err := h.initiator.Start(c.Context(), registrationID, false)
	if err != nil {
		log.Printf("events: initiate payment for %s: %v", registrationID, err)
		return h.renderPaymentPending(c, event, registrationID, err.Error())
	}

	if err := h.sessions.SetPendingPayment(c, session.PendingPayment{
		RegistrationID:  registrationID,
		PaymentID:       payment.ID,
		OrderTrackingID: payment.OrderTrackingID,
	}); err != nil {
		log.Printf("events: store pending payment: %v", err)
		return h.renderPaymentPending(c, event, registrationID, "Could not start the payment. Please retry.")
	}

	return c.Redirect(payment.PaymentURL, fiber.StatusSeeOther)
}

// renderPaymentPending is the "registered, payment pending" state with a
// manual retry action.
func (h *handlers) renderPaymentPending(c *fiber.Ctx, event models.Event, registrationID, errMsg string) error {
	data := shared.View(c, h.sessions, "Payment Pending - "+event.Title, "events")
	data["Event"] = event
	data["RegistrationID"] = registrationID
	data["ErrorMessage"] = errMsg
	data["RetryPath"] = "/events/registrations/" + registrationID + "/pay?event=" + event.ID
	return c.Render("events/payment_pending", data)
}

func (h *handlers) retryPaymentAPI(c *fiber.Ctx) error {
	registrationID := c.Params("id")
	eventID := c.Query("event")

	event, err := h.api.GetEvent(c.Context(), eventID)
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/events")
	}
	return h.startPayment(c, event, registrationID)
}

func (h *handlers) rerenderForm(c *fiber.Ctx, event models.Event, form registerForm, errMsg string) error {
	data := shared.View(c, h.sessions, "Register - "+event.Title, "events")
	data["Event"] = event
	data["Form"] = form
	data["FlashKind"] = session.FlashError
	data["FlashText"] = errMsg
	return c.Render("events/register", data)
}
