package backend

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

func TestEncodeSubmissionRoleInterestsRoundTrip(t *testing.T) {
	sub := models.CapabilitySubmission{
		FullName: "Peter Otieno",
		Email:    "peter@example.com",
		RoleInterests: []models.RoleInterest{
			{Role: "Sales Trainer"},
			{Role: "Facilitator"},
			{Role: "Sales Coach"},
		},
	}

	body, contentType, err := encodeSubmission(sub, nil)
	require.NoError(t, err)

	// Parse the multipart payload back the way the backend would.
	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	require.NoError(t, req.ParseMultipartForm(1<<20))

	values := req.MultipartForm.Value["role_interests"]
	require.Len(t, values, 3, "one JSON-encoded field per selected role")

	got := map[string]bool{}
	for _, v := range values {
		var role models.RoleInterest
		require.NoError(t, json.Unmarshal([]byte(v), &role))
		got[role.Role] = true
	}
	// Order-independent set equality.
	assert.Equal(t, sub.RoleSet(), got)

	assert.Equal(t, "Peter Otieno", req.FormValue("full_name"))
}

func TestEncodeSubmissionWithResume(t *testing.T) {
	sub := models.CapabilitySubmission{FullName: "A", Email: "a@b.co"}
	resume := &ResumeUpload{Filename: "cv.pdf", Content: []byte("%PDF-1.4 fake")}

	body, contentType, err := encodeSubmission(sub, resume)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	file, header, err := req.FormFile("resume")
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, "cv.pdf", header.Filename)
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, resume.Content, content)
}

func TestUpdateSubmissionUsesPatch(t *testing.T) {
	var gotMethod, gotPath string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "S7"}`))
	}))

	_, err := client.UpdateSubmission(context.Background(), "tok", "csrf", models.CapabilitySubmission{ID: "S7"}, nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/capability-submissions/S7/", gotPath)
}
