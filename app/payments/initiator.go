package payments

import (
	"context"
	"fmt"
	"log"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// Initiator opens a payment-provider session for a created registration.
// The returned redirect URL takes the browser out of the application
// entirely, which is why the caller must persist resume keys first.
type Initiator struct {
	api *backend.Client
}

func NewInitiator(api *backend.Client) *Initiator {
	return &Initiator{api: api}
}

// Start requests a payment session for the registration and returns the
// provider redirect. A CSRF token is fetched first; when that fails the
// initiate call proceeds without one and the backend decides.
func (i *Initiator) Start(ctx context.Context, registrationID string, program bool) (models.Payment, error) {
	csrf, err := i.api.CSRFToken(ctx)
	if err != nil {
		log.Printf("payments: csrf token fetch failed, continuing without: %v", err)
		csrf = ""
	}

	var payment models.Payment
	if program {
		payment, err = i.api.InitiateProgramPayment(ctx, registrationID, csrf)
	} else {
		payment, err = i.api.InitiateEventPayment(ctx, registrationID, csrf)
	}
	if err != nil {
		return models.Payment{}, err
	}
	if payment.PaymentURL == "" {
		return models.Payment{}, fmt.Errorf("payments: initiate for %s returned no payment_url", registrationID)
	}
	return payment, nil
}
