package admin

import (
	"strconv"
	"strings"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

var csvHeader = []string{
	"Full Name", "Email", "Phone", "Location", "LinkedIn", "Roles",
	"Industries", "Experience", "Current Role",
	"Prospecting", "Closing", "Retention",
	"Achievements", "Education", "Consent", "Status", "Submitted",
}

// ExportCSV renders the filtered view as CSV: a header line plus one line
// per submission, every field wrapped in double quotes. Built by hand;
// the format is fixed and a library would add nothing.
func ExportCSV(subs []models.CapabilitySubmission) string {
	lines := make([]string, 0, len(subs)+1)
	lines = append(lines, csvLine(csvHeader))

	for _, sub := range subs {
		roles := make([]string, 0, len(sub.RoleInterests))
		for _, r := range sub.RoleInterests {
			roles = append(roles, r.Role)
		}
		lines = append(lines, csvLine([]string{
			sub.FullName,
			sub.Email,
			sub.Phone,
			sub.Location,
			sub.LinkedIn,
			strings.Join(roles, ", "),
			sub.Industries,
			sub.Experience,
			sub.CurrentRole,
			strconv.Itoa(sub.ProspectingConfidence),
			strconv.Itoa(sub.ClosingConfidence),
			strconv.Itoa(sub.RetentionConfidence),
			sub.Achievements,
			sub.Education,
			strconv.FormatBool(sub.Consent),
			sub.Status,
			sub.CreatedAt,
		}))
	}
	return strings.Join(lines, "\n")
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
