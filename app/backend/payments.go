package backend

import (
	"context"
	"net/http"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// InitiateEventPayment asks the backend to open a payment-provider session
// for an event registration and return the redirect URL.
func (c *Client) InitiateEventPayment(ctx context.Context, registrationID, csrf string) (models.Payment, error) {
	var payment models.Payment
	err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/payments/initiate/" + registrationID + "/",
		CSRF:   csrf,
		Out:    &payment,
	})
	return payment, err
}

// InitiateProgramPayment is the program-registration equivalent.
func (c *Client) InitiateProgramPayment(ctx context.Context, registrationID, csrf string) (models.Payment, error) {
	var payment models.Payment
	err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/payments/program/initiate/" + registrationID + "/",
		CSRF:   csrf,
		Out:    &payment,
	})
	return payment, err
}

// PaymentStatus reads the current state of a payment.
func (c *Client) PaymentStatus(ctx context.Context, paymentID string) (models.Payment, error) {
	var payment models.Payment
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/payments/status/" + paymentID + "/",
		Out:    &payment,
	})
	return payment, err
}
