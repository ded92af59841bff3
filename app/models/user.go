package models

// User is the profile snapshot the backend returns at login. Held in the
// session purely as a display hint; the backend re-checks permissions on
// every call.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// IsAdmin derives the admin display hint. Real authorization is the
// backend's 401/403 on each request.
func (u User) IsAdmin() bool {
	return u.IsStaff || u.IsSuperuser || u.Role == "admin"
}

// FullName joins the name parts for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
