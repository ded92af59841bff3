package recruitment

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/forms"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// step is one named state of the capability form. Read copies posted
// fields into the working submission; Validate gates the Next transition.
// Back navigation is unguarded.
type step struct {
	Name     string
	Title    string
	Read     func(c *fiber.Ctx, sub *models.CapabilitySubmission)
	Validate func(sub models.CapabilitySubmission) string
}

// The seven ordered steps. Index into the slice is the saved progress
// value, so order changes are a data migration.
var steps = []step{
	{
		Name:  "personal",
		Title: "Personal Information",
		Read: func(c *fiber.Ctx, sub *models.CapabilitySubmission) {
			sub.FullName = strings.TrimSpace(c.FormValue("full_name"))
			sub.Email = strings.TrimSpace(c.FormValue("email"))
			sub.Phone = strings.TrimSpace(c.FormValue("phone"))
			sub.Location = strings.TrimSpace(c.FormValue("location"))
			sub.LinkedIn = strings.TrimSpace(c.FormValue("linkedin"))
		},
		Validate: func(sub models.CapabilitySubmission) string {
			switch {
			case sub.FullName == "":
				return "Full name is required."
			case sub.Email == "":
				return "Email is required."
			case !forms.ValidEmail(sub.Email):
				return "Please enter a valid email address."
			case sub.Phone == "":
				return "Phone is required."
			case sub.Location == "":
				return "Location is required."
			}
			return ""
		},
	},
	{
		Name:  "roles",
		Title: "Role Interests",
		Read: func(c *fiber.Ctx, sub *models.CapabilitySubmission) {
			sub.RoleInterests = nil
			seen := map[string]bool{}
			args := struct {
				Roles []string `form:"roles"`
			}{}
			if err := c.BodyParser(&args); err == nil {
				for _, role := range args.Roles {
					role = strings.TrimSpace(role)
					if role == "" || seen[role] {
						continue
					}
					seen[role] = true
					sub.RoleInterests = append(sub.RoleInterests, models.RoleInterest{Role: role})
				}
			}
		},
		Validate: func(sub models.CapabilitySubmission) string {
			if len(sub.RoleInterests) == 0 {
				return "Select at least one role you are interested in."
			}
			return ""
		},
	},
	{
		Name:  "experience",
		Title: "Experience",
		Read: func(c *fiber.Ctx, sub *models.CapabilitySubmission) {
			sub.Industries = strings.TrimSpace(c.FormValue("industries"))
			sub.Experience = strings.TrimSpace(c.FormValue("experience"))
			sub.CurrentRole = strings.TrimSpace(c.FormValue("current_role"))
		},
		Validate: func(sub models.CapabilitySubmission) string {
			switch {
			case sub.Industries == "":
				return "Industries is required."
			case sub.Experience == "":
				return "Experience is required."
			case sub.CurrentRole == "":
				return "Current role is required."
			}
			return ""
		},
	},
	{
		Name:  "capabilities",
		Title: "Capability Confidence",
		Read: func(c *fiber.Ctx, sub *models.CapabilitySubmission) {
			sub.ProspectingConfidence = rating(c.FormValue("prospecting_confidence"))
			sub.ClosingConfidence = rating(c.FormValue("closing_confidence"))
			sub.RetentionConfidence = rating(c.FormValue("retention_confidence"))
		},
		Validate: func(sub models.CapabilitySubmission) string {
			for _, r := range []int{sub.ProspectingConfidence, sub.ClosingConfidence, sub.RetentionConfidence} {
				if r < 1 || r > 5 {
					return "Rate each capability from 1 to 5."
				}
			}
			return ""
		},
	},
	{
		Name:  "achievements",
		Title: "Achievements",
		Read: func(c *fiber.Ctx, sub *models.CapabilitySubmission) {
			sub.Achievements = strings.TrimSpace(c.FormValue("achievements"))
		},
		Validate: func(sub models.CapabilitySubmission) string {
			if sub.Achievements == "" {
				return "Achievements is required."
			}
			return ""
		},
	},
	{
		Name:  "education",
		Title: "Education",
		Read: func(c *fiber.Ctx, sub *models.CapabilitySubmission) {
			sub.Education = strings.TrimSpace(c.FormValue("education"))
		},
		Validate: func(sub models.CapabilitySubmission) string {
			if sub.Education == "" {
				return "Education is required."
			}
			return ""
		},
	},
	{
		Name:  "consent",
		Title: "Review & Consent",
		Read: func(c *fiber.Ctx, sub *models.CapabilitySubmission) {
			sub.Consent = c.FormValue("consent") == "on" || c.FormValue("consent") == "true"
		},
		Validate: func(sub models.CapabilitySubmission) string {
			if !sub.Consent {
				return "You must consent to us processing your application."
			}
			return ""
		},
	},
}

func rating(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func lastStep() int { return len(steps) - 1 }

func clampStep(n int) int {
	if n < 0 {
		return 0
	}
	if n > lastStep() {
		return lastStep()
	}
	return n
}
