package admin

import (
	"strings"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// Filter is the admin browser's view criteria. Filtering happens here,
// in-process, against the full list fetched from the backend.
type Filter struct {
	Search     string
	Status     string
	Experience string
	Role       string
}

// Apply returns the submissions matching every set criterion.
func (f Filter) Apply(subs []models.CapabilitySubmission) []models.CapabilitySubmission {
	out := make([]models.CapabilitySubmission, 0, len(subs))
	for _, sub := range subs {
		if f.matches(sub) {
			out = append(out, sub)
		}
	}
	return out
}

func (f Filter) matches(sub models.CapabilitySubmission) bool {
	if f.Status != "" && sub.Status != f.Status {
		return false
	}
	if f.Experience != "" && sub.Experience != f.Experience {
		return false
	}
	if f.Role != "" && !sub.RoleSet()[f.Role] {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystacks := []string{sub.FullName, sub.Email, sub.Location, sub.Industries}
		found := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Empty reports whether no criterion is set.
func (f Filter) Empty() bool {
	return f.Search == "" && f.Status == "" && f.Experience == "" && f.Role == ""
}
