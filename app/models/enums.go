package models

// Event lifecycle statuses as reported by the backend.
const (
	EventStatusOpen      = "open"
	EventStatusClosed    = "closed"
	EventStatusInvite    = "invite"
	EventStatusEarlyBird = "early_bird"
	EventStatusCompleted = "completed"
)

// Payment statuses as reported by the backend.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusError     = "error"
)

// Capability submission review statuses.
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusReviewed = "reviewed"
	SubmissionStatusAccepted = "accepted"
	SubmissionStatusRejected = "rejected"
)
