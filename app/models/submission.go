package models

// RoleInterest is one role a candidate selected. The backend stores the
// set as child records; the form sends them as repeated JSON-encoded
// fields, one per role.
type RoleInterest struct {
	ID   string `json:"id,omitempty"`
	Role string `json:"role"`
}

// CapabilitySubmission is the recruitment candidate's multi-section
// self-assessment record. Status belongs to the backend; candidates may
// edit or delete their own submission, admins transition the status.
type CapabilitySubmission struct {
	ID            string         `json:"id,omitempty"`
	FullName      string         `json:"full_name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Location      string         `json:"location"`
	LinkedIn      string         `json:"linkedin,omitempty"`
	RoleInterests []RoleInterest `json:"role_interests"`
	Industries    string         `json:"industries"`
	Experience    string         `json:"experience"`
	CurrentRole   string         `json:"current_role"`

	// Capability confidence ratings, 1-5.
	ProspectingConfidence int `json:"prospecting_confidence"`
	ClosingConfidence     int `json:"closing_confidence"`
	RetentionConfidence   int `json:"retention_confidence"`

	Achievements string `json:"achievements"`
	Education    string `json:"education"`
	ResumeName   string `json:"resume_name,omitempty"`
	Consent      bool   `json:"consent"`

	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// RoleSet returns the selected roles as a lookup set, order-independent.
func (s CapabilitySubmission) RoleSet() map[string]bool {
	set := make(map[string]bool, len(s.RoleInterests))
	for _, r := range s.RoleInterests {
		set[r.Role] = true
	}
	return set
}
