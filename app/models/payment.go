package models

// Payment is only ever observed by this client: initiated via the backend,
// completed (or not) at the external provider.
type Payment struct {
	ID              string `json:"payment_id"`
	OrderTrackingID string `json:"order_tracking_id"`
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
	PaymentURL      string `json:"payment_url,omitempty"`
}

// Terminal reports whether polling should stop for this status.
func (p Payment) Terminal() bool {
	switch p.Status {
	case PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusError:
		return true
	}
	return false
}

// Succeeded reports a completed payment.
func (p Payment) Succeeded() bool { return p.Status == PaymentStatusCompleted }
