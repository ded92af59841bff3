package programs

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/forms"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/shared"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

type registerForm struct {
	FullName     string `json:"full_name" form:"full_name" validate:"required"`
	Email        string `json:"email" form:"email" validate:"required,relaxed_email"`
	Phone        string `json:"phone" form:"phone" validate:"required"`
	Organization string `json:"organization" form:"organization"`
	TeamSize     string `json:"team_size" form:"team_size" validate:"required"`
}

func (h *handlers) registerAPI(c *fiber.Ctx) error {
	program, err := h.api.GetProgram(c.Context(), c.Params("id"))
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/programs")
	}

	var form registerForm
	if err := c.BodyParser(&form); err != nil {
		h.sessions.Flash(c, session.FlashError, "Invalid request.")
		return c.Redirect("/programs/" + program.ID + "/register")
	}

	if msg := forms.Check(form); msg != "" {
		return h.rerenderForm(c, program, form, msg)
	}

	created, err := h.api.CreateProgramRegistration(c.Context(), models.ProgramRegistration{
		ProgramID:    program.ID,
		FullName:     form.FullName,
		Email:        form.Email,
		Phone:        form.Phone,
		Organization: form.Organization,
		TeamSize:     form.TeamSize,
	})
	if err != nil {
		return h.rerenderForm(c, program, form, err.Error())
	}

	if program.IsFree() || !created.PaymentRequired {
		data := shared.View(c, h.sessions, "Registered - "+program.Title, "programs")
		data["Program"] = program
		data["Registration"] = created
		return c.Render("programs/registered", data)
	}

	return h.startPayment(c, program, created.ID)
}

func (h *handlers) startPayment(c *fiber.Ctx, program models.Program, registrationID string) error {
	payment, err := h.initiator.Start(c.Context(), registrationID, true)
	if err != nil {
		log.Printf("programs: initiate payment for %s: %v", registrationID, err)
		return h.renderPaymentPending(c, program, registrationID, err.Error())
	}

	if err := h.sessions.SetPendingPayment(c, session.PendingPayment{
		RegistrationID:  registrationID,
		PaymentID:       payment.ID,
		OrderTrackingID: payment.OrderTrackingID,
		Program:         true,
	}); err != nil {
		log.Printf("programs: store pending payment: %v", err)
		return h.renderPaymentPending(c, program, registrationID, "Could not start the payment. Please retry.")
	}

	return c.Redirect(payment.PaymentURL, fiber.StatusSeeOther)
}

func (h *handlers) renderPaymentPending(c *fiber.Ctx, program models.Program, registrationID, errMsg string) error {
	data := shared.View(c, h.sessions, "Payment Pending - "+program.Title, "programs")
	data["Program"] = program
	data["RegistrationID"] = registrationID
	data["ErrorMessage"] = errMsg
	data["RetryPath"] = "/programs/registrations/" + registrationID + "/pay?program=" + program.ID
	return c.Render("programs/payment_pending", data)
}

func (h *handlers) retryPaymentAPI(c *fiber.Ctx) error {
	registrationID := c.Params("id")

	program, err := h.api.GetProgram(c.Context(), c.Query("program"))
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/programs")
	}
	return h.startPayment(c, program, registrationID)
}

func (h *handlers) rerenderForm(c *fiber.Ctx, program models.Program, form registerForm, errMsg string) error {
	data := shared.View(c, h.sessions, "Register - "+program.Title, "programs")
	data["Program"] = program
	data["Form"] = form
	data["FlashKind"] = session.FlashError
	data["FlashText"] = errMsg
	return c.Render("programs/register", data)
}
