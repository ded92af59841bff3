package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// statusScript returns each payment in sequence, then repeats the last one.
func statusScript(seq ...models.Payment) (StatusFunc, *int) {
	calls := 0
	return func(ctx context.Context, id string) (models.Payment, error) {
		i := calls
		if i >= len(seq) {
			i = len(seq) - 1
		}
		calls++
		return seq[i], nil
	}, &calls
}

func TestWaitCompleted(t *testing.T) {
	fetch, calls := statusScript(
		models.Payment{Status: models.PaymentStatusPending},
		models.Payment{Status: models.PaymentStatusPending},
		models.Payment{Status: models.PaymentStatusCompleted, Message: "paid"},
	)
	p := NewPoller(fetch, time.Millisecond, 10)

	res := p.Wait(context.Background(), "P1")
	if res.Outcome != OutcomeCompleted {
		t.Fatalf("expected completed, got %s", res.Outcome)
	}
	if res.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", res.Attempts)
	}
	if *calls != 3 {
		t.Fatalf("polling must stop at the terminal state, saw %d fetches", *calls)
	}
	if res.Payment.Message != "paid" {
		t.Fatalf("expected last payment retained, got %+v", res.Payment)
	}
}

func TestWaitFailedStops(t *testing.T) {
	fetch, calls := statusScript(
		models.Payment{Status: models.PaymentStatusPending},
		models.Payment{Status: models.PaymentStatusFailed, Message: "declined"},
	)
	p := NewPoller(fetch, time.Millisecond, 10)

	res := p.Wait(context.Background(), "P1")
	if res.Outcome != OutcomeFailed {
		t.Fatalf("expected failed, got %s", res.Outcome)
	}
	if *calls != 2 {
		t.Fatalf("no further polling after failed, saw %d fetches", *calls)
	}
}

func TestWaitTimedOutAfterMaxAttempts(t *testing.T) {
	fetch, calls := statusScript(models.Payment{Status: models.PaymentStatusPending})
	p := NewPoller(fetch, time.Millisecond, 5)

	res := p.Wait(context.Background(), "P1")
	if res.Outcome != OutcomeTimedOut {
		t.Fatalf("expected timed_out, got %s", res.Outcome)
	}
	if res.Attempts != 5 || *calls != 5 {
		t.Fatalf("expected exactly 5 attempts, got %d (%d fetches)", res.Attempts, *calls)
	}
}

func TestWaitContextCancelled(t *testing.T) {
	fetch, _ := statusScript(models.Payment{Status: models.PaymentStatusPending})
	p := NewPoller(fetch, 50*time.Millisecond, 100)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	res := p.Wait(ctx, "P1")
	if res.Outcome != OutcomeTimedOut {
		t.Fatalf("expected timed_out on cancellation, got %s", res.Outcome)
	}
	if !errors.Is(res.Err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", res.Err)
	}
}

func TestWaitSurvivesTransientErrors(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context, id string) (models.Payment, error) {
		calls++
		if calls < 3 {
			return models.Payment{}, errors.New("connection reset")
		}
		return models.Payment{Status: models.PaymentStatusCompleted}, nil
	}
	p := NewPoller(fetch, time.Millisecond, 10)

	res := p.Wait(context.Background(), "P1")
	if res.Outcome != OutcomeCompleted {
		t.Fatalf("expected completed despite transient errors, got %s", res.Outcome)
	}
	if res.Err != nil {
		t.Fatalf("terminal success must clear the last error, got %v", res.Err)
	}
}
