package recruitment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

func completeSubmission() models.CapabilitySubmission {
	return models.CapabilitySubmission{
		FullName: "Jane Wanjiku",
		Email:    "jane@example.com",
		Phone:    "+254700000001",
		Location: "Nairobi",
		RoleInterests: []models.RoleInterest{
			{Role: "Sales Trainer"},
		},
		Industries:            "FMCG",
		Experience:            "3-5",
		CurrentRole:           "Sales Manager",
		ProspectingConfidence: 4,
		ClosingConfidence:     5,
		RetentionConfidence:   3,
		Achievements:          "Top seller 2024",
		Education:             "BCom, University of Nairobi",
		Consent:               true,
	}
}

func TestEveryStepPassesOnCompleteSubmission(t *testing.T) {
	sub := completeSubmission()
	for _, s := range steps {
		assert.Empty(t, s.Validate(sub), "step %s", s.Name)
	}
}

func TestStepValidationBlocks(t *testing.T) {
	tests := []struct {
		name   string
		step   string
		mutate func(*models.CapabilitySubmission)
	}{
		{"missing name", "personal", func(s *models.CapabilitySubmission) { s.FullName = "" }},
		{"bad email", "personal", func(s *models.CapabilitySubmission) { s.Email = "not an email" }},
		{"missing phone", "personal", func(s *models.CapabilitySubmission) { s.Phone = "" }},
		{"no roles", "roles", func(s *models.CapabilitySubmission) { s.RoleInterests = nil }},
		{"missing industries", "experience", func(s *models.CapabilitySubmission) { s.Industries = "" }},
		{"rating too low", "capabilities", func(s *models.CapabilitySubmission) { s.ClosingConfidence = 0 }},
		{"rating too high", "capabilities", func(s *models.CapabilitySubmission) { s.ProspectingConfidence = 6 }},
		{"missing achievements", "achievements", func(s *models.CapabilitySubmission) { s.Achievements = "" }},
		{"missing education", "education", func(s *models.CapabilitySubmission) { s.Education = "" }},
		{"no consent", "consent", func(s *models.CapabilitySubmission) { s.Consent = false }},
	}

	byName := map[string]step{}
	for _, s := range steps {
		byName[s.Name] = s
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := completeSubmission()
			tt.mutate(&sub)
			assert.NotEmpty(t, byName[tt.step].Validate(sub))
		})
	}
}

func TestStepOrder(t *testing.T) {
	want := []string{
		"personal", "roles", "experience", "capabilities",
		"achievements", "education", "consent",
	}
	assert.Len(t, steps, len(want))
	for i, s := range steps {
		assert.Equal(t, want[i], s.Name)
	}
}

func TestClampStep(t *testing.T) {
	assert.Equal(t, 0, clampStep(-3))
	assert.Equal(t, 2, clampStep(2))
	assert.Equal(t, lastStep(), clampStep(99))
}
