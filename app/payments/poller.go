package payments

import (
	"context"
	"log"
	"time"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// Outcome is the terminal state of a polling run.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
	OutcomeTimedOut  Outcome = "timed_out"
)

// StatusFunc reads the current payment state. Satisfied by
// (*backend.Client).PaymentStatus.
type StatusFunc func(ctx context.Context, paymentID string) (models.Payment, error)

// Result is what a polling run ended with. Payment holds the last
// observed state; Err the last fetch error, if the run ended on one.
type Result struct {
	Outcome  Outcome
	Payment  models.Payment
	Attempts int
	Err      error
}

// Poller watches a payment until it reaches a terminal status. Polling is
// bounded: a fixed interval, a maximum attempt count, and the caller's
// context deadline all cap the run, so an unresolved payment ends in
// OutcomeTimedOut with a manual retry offered to the user instead of an
// endless loop.
type Poller struct {
	fetch       StatusFunc
	interval    time.Duration
	maxAttempts int
}

// NewPoller builds a poller over the given status source.
func NewPoller(fetch StatusFunc, interval time.Duration, maxAttempts int) *Poller {
	return &Poller{fetch: fetch, interval: interval, maxAttempts: maxAttempts}
}

// Wait polls until completed, failed, attempts are exhausted, or ctx is
// done. The first status check happens immediately; subsequent checks
// tick at the configured interval.
func (p *Poller) Wait(ctx context.Context, paymentID string) Result {
	res := Result{Outcome: OutcomeTimedOut}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for res.Attempts < p.maxAttempts {
		res.Attempts++

		payment, err := p.fetch(ctx, paymentID)
		if err != nil {
			// Transient fetch failures keep the run alive; the bound
			// still applies.
			res.Err = err
			log.Printf("payments: status check %d for %s failed: %v", res.Attempts, paymentID, err)
		} else {
			res.Err = nil
			res.Payment = payment
			if payment.Succeeded() {
				res.Outcome = OutcomeCompleted
				return res
			}
			if payment.Terminal() {
				res.Outcome = OutcomeFailed
				return res
			}
		}

		if res.Attempts >= p.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			res.Err = ctx.Err()
			return res
		case <-ticker.C:
		}
	}
	return res
}

// CheckOnce performs a single status read, the building block for
// page-driven polling where the browser re-requests each tick.
func (p *Poller) CheckOnce(ctx context.Context, paymentID string) (models.Payment, error) {
	return p.fetch(ctx, paymentID)
}
