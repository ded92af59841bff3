package models

// Event mirrors a backend event record. Read-only on this side; the
// backend owns the lifecycle.
type Event struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	Location         string `json:"location"`
	Capacity         int    `json:"capacity"`
	IsFree           bool   `json:"is_free"`
	Currency         string `json:"currency"`
	Amount           string `json:"amount"`
	Status           string `json:"status"`
	RegistrationOpen bool   `json:"registration_open"`
}

// AcceptsRegistrations reports whether the registration form should be
// offered at all. The backend re-checks this on create.
func (e Event) AcceptsRegistrations() bool {
	return e.RegistrationOpen && e.Status != EventStatusClosed && e.Status != EventStatusCompleted
}
