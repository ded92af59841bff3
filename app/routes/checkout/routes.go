package checkout

import (
	"log"

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
	poller    *payments.Poller
}

// SetupCheckoutRoutes wires the payment-provider return route and the
// status endpoints that drive confirmation.
func SetupCheckoutRoutes(app *fiber.App, api *backend.Client, sessions *session.Store, initiator *payments.Initiator, poller *payments.Poller) {
	h := &handlers{api: api, sessions: sessions, initiator: initiator, poller: poller}

	app.Get("/payments/return", h.renderReturnPage)
	app.Get("/payments/confirm", h.renderConfirmPage)
	app.Post("/payments/retry", h.retryAPI)
	app.Get("/api/payments/status/:id", h.statusAPI)
}

// renderReturnPage is where the provider sends the browser back. When the
// redirect carries a status we resume from the query parameters alone, no
// fresh backend call; otherwise we fall back to polling.
func (h *handlers) renderReturnPage(c *fiber.Ctx) error {
	status := c.Query("status")
	message := c.Query("message")
	tracking := c.Query("order_tracking_id")
	if tracking == "" {
		tracking = c.Query("OrderTrackingId")
	}
	paymentID := c.Query("payment_id")

	pending, hasPending := h.sessions.PendingPayment(c)
	if paymentID == "" && hasPending {
		paymentID = pending.PaymentID
	}

	switch status {
	case models.PaymentStatusCompleted:
		return h.renderCompleted(c, message)
	case models.PaymentStatusFailed, models.PaymentStatusError:
		return h.renderFailed(c, message)
	}

	// No terminal status in the query: await asynchronous confirmation.
	if paymentID == "" {
		h.sessions.Flash(c, session.FlashError, "No payment in progress.")
		return c.Redirect("/")
	}

	data := shared.View(c, h.sessions, "Confirming Payment", "events")
	data["PaymentID"] = paymentID
	data["OrderTrackingID"] = tracking
	data["StatusPath"] = "/api/payments/status/" + paymentID
	data["PollSeconds"] = 5
	return c.Render("checkout/confirming", data)
}

// renderConfirmPage is the scriptless fallback: one bounded server-side
// polling run, then a terminal page either way.
func (h *handlers) renderConfirmPage(c *fiber.Ctx) error {
	pending, ok := h.sessions.PendingPayment(c)
	if !ok {
		h.sessions.Flash(c, session.FlashError, "No payment in progress.")
		return c.Redirect("/")
	}

	result := h.poller.Wait(c.Context(), pending.PaymentID)
	switch result.Outcome {
	case payments.OutcomeCompleted:
		return h.renderCompleted(c, result.Payment.Message)
	case payments.OutcomeFailed:
		return h.renderFailed(c, result.Payment.Message)
	default:
		data := shared.View(c, h.sessions, "Payment Still Pending", "events")
		data["Message"] = "We could not confirm your payment yet. You can check again or contact us."
		data["Attempts"] = result.Attempts
		return c.Render("checkout/timed_out", data)
	}
}

func (h *handlers) renderCompleted(c *fiber.Ctx, message string) error {
	pending, hasPending := h.sessions.PendingPayment(c)
	if err := h.sessions.ClearPendingPayment(c); err != nil {
		log.Printf("checkout: clear pending payment: %v", err)
	}

	destination := "/events"
	if hasPending && pending.Program {
		destination = "/programs"
	}

	data := shared.View(c, h.sessions, "Payment Complete", "events")
	data["Message"] = message
	data["RedirectTo"] = destination
	data["RedirectSeconds"] = 3
	return c.Render("checkout/completed", data)
}

func (h *handlers) renderFailed(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "The payment did not go through."
	}
	data := shared.View(c, h.sessions, "Payment Failed", "events")
	data["Message"] = message
	_, canRetry := h.sessions.PendingPayment(c)
	data["CanRetry"] = canRetry
	return c.Render("checkout/failed", data)
}

// retryAPI re-initiates payment from the pending session keys, the manual
// recovery action after a failure or timeout.
func (h *handlers) retryAPI(c *fiber.Ctx) error {
	pending, ok := h.sessions.PendingPayment(c)
	if !ok {
		h.sessions.Flash(c, session.FlashError, "No payment in progress.")
		return c.Redirect("/")
	}

	payment, err := h.initiator.Start(c.Context(), pending.RegistrationID, pending.Program)
	if err != nil {
		return h.renderFailed(c, err.Error())
	}

	pending.PaymentID = payment.ID
	pending.OrderTrackingID = payment.OrderTrackingID
	if err := h.sessions.SetPendingPayment(c, pending); err != nil {
		log.Printf("checkout: store pending payment: %v", err)
	}
	return c.Redirect(payment.PaymentURL, fiber.StatusSeeOther)
}

// statusAPI is one polling tick for the confirming page's script. On a
// completed payment the pending session keys are cleared here, so
// subsequent ticks are no-ops.
func (h *handlers) statusAPI(c *fiber.Ctx) error {
	payment, err := h.poller.CheckOnce(c.Context(), c.Params("id"))
	if err != nil {
		if backend.IsAuth(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	out := fiber.Map{
		"status":  payment.Status,
		"message": payment.Message,
	}
	if payment.Succeeded() {
		pending, hasPending := h.sessions.PendingPayment(c)
		if err := h.sessions.ClearPendingPayment(c); err != nil {
			log.Printf("checkout: clear pending payment: %v", err)
		}
		destination := "/events"
		if hasPending && pending.Program {
			destination = "/programs"
		}
		out["redirect"] = destination
	}
	return c.JSON(out)
}
