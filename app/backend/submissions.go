package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// ResumeUpload is an optional file attached to a capability submission.
type ResumeUpload struct {
	Filename string
	Content  []byte
}

// ListSubmissions fetches all capability submissions (admin only).
func (c *Client) ListSubmissions(ctx context.Context, token string) ([]models.CapabilitySubmission, error) {
	var subs []models.CapabilitySubmission
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/capability-submissions/",
		Token:  token,
		Out:    &subs,
	})
	return subs, err
}

// GetMySubmission fetches the calling candidate's own submission.
func (c *Client) GetMySubmission(ctx context.Context, token string) (models.CapabilitySubmission, error) {
	var sub models.CapabilitySubmission
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/capability-submissions/mine/",
		Token:  token,
		Out:    &sub,
	})
	return sub, err
}

// CreateSubmission posts a new capability submission as multipart form
// data so the resume file can ride along.
func (c *Client) CreateSubmission(ctx context.Context, token, csrf string, sub models.CapabilitySubmission, resume *ResumeUpload) (models.CapabilitySubmission, error) {
	return c.sendSubmission(ctx, http.MethodPost, "/capability-submissions/", token, csrf, sub, resume)
}

// UpdateSubmission patches an existing submission.
func (c *Client) UpdateSubmission(ctx context.Context, token, csrf string, sub models.CapabilitySubmission, resume *ResumeUpload) (models.CapabilitySubmission, error) {
	return c.sendSubmission(ctx, http.MethodPatch, "/capability-submissions/"+sub.ID+"/", token, csrf, sub, resume)
}

// DeleteSubmission removes the candidate's submission.
func (c *Client) DeleteSubmission(ctx context.Context, token, csrf, id string) error {
	return c.do(ctx, request{
		Method: http.MethodDelete,
		Path:   "/capability-submissions/" + id + "/",
		Token:  token,
		CSRF:   csrf,
	})
}

// TransitionSubmission moves a submission to a new review status (admin).
func (c *Client) TransitionSubmission(ctx context.Context, token, csrf, id, status string) error {
	return c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/capability-submissions/" + id + "/status/",
		Token:  token,
		CSRF:   csrf,
		Body:   map[string]string{"status": status},
	})
}

func (c *Client) sendSubmission(ctx context.Context, method, path, token, csrf string, sub models.CapabilitySubmission, resume *ResumeUpload) (models.CapabilitySubmission, error) {
	var created models.CapabilitySubmission

	body, contentType, err := encodeSubmission(sub, resume)
	if err != nil {
		return created, err
	}

	err = c.do(ctx, request{
		Method:      method,
		Path:        path,
		Token:       token,
		CSRF:        csrf,
		RawBody:     body,
		ContentType: contentType,
		Out:         &created,
	})
	return created, err
}

// encodeSubmission builds the multipart payload. Role interests go out as
// repeated JSON-encoded fields, one per selected role.
func encodeSubmission(sub models.CapabilitySubmission, resume *ResumeUpload) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"full_name":              sub.FullName,
		"email":                  sub.Email,
		"phone":                  sub.Phone,
		"location":               sub.Location,
		"linkedin":               sub.LinkedIn,
		"industries":             sub.Industries,
		"experience":             sub.Experience,
		"current_role":           sub.CurrentRole,
		"prospecting_confidence": strconv.Itoa(sub.ProspectingConfidence),
		"closing_confidence":     strconv.Itoa(sub.ClosingConfidence),
		"retention_confidence":   strconv.Itoa(sub.RetentionConfidence),
		"achievements":           sub.Achievements,
		"education":              sub.Education,
		"consent":                strconv.FormatBool(sub.Consent),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("backend: encode submission field %s: %w", name, err)
		}
	}

	for _, role := range sub.RoleInterests {
		encoded, err := json.Marshal(role)
		if err != nil {
			return nil, "", fmt.Errorf("backend: encode role interest: %w", err)
		}
		if err := w.WriteField("role_interests", string(encoded)); err != nil {
			return nil, "", fmt.Errorf("backend: encode role interest: %w", err)
		}
	}

	if resume != nil {
		part, err := w.CreateFormFile("resume", resume.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("backend: attach resume: %w", err)
		}
		if _, err := part.Write(resume.Content); err != nil {
			return nil, "", fmt.Errorf("backend: attach resume: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("backend: finalize submission payload: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
