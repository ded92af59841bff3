package models

// EventRegistration is the payload for creating an event registration and
// the mirror of the created record. PaymentRequired is derived from the
// event's free flag at read time; later price changes are not reconciled.
type EventRegistration struct {
	ID              string `json:"id,omitempty"`
	EventID         string `json:"event"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	JobTitle        string `json:"job_title"`
	PaymentRequired bool   `json:"payment_required,omitempty"`
}

// ProgramRegistration is the program-side equivalent; context fields differ
// (team size instead of company/job title).
type ProgramRegistration struct {
	ID              string `json:"id,omitempty"`
	ProgramID       string `json:"program"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Organization    string `json:"organization"`
	TeamSize        string `json:"team_size"`
	PaymentRequired bool   `json:"payment_required,omitempty"`
}
