package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Client talks to the backend REST API. This application owns no
// authoritative state; every read and write goes through here.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL. The cookie jar captures the
// backend's csrftoken cookie so it can serve as a fallback token source.
func New(baseURL string, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// request describes one backend call. Token and CSRF are attached as
// headers when set; Body is JSON-encoded unless RawBody is given (used by
// the multipart submission calls).
type request struct {
	Method      string
	Path        string
	Token       string
	CSRF        string
	Body        interface{}
	RawBody     io.Reader
	ContentType string
	Out         interface{}
}

func (c *Client) do(ctx context.Context, r request) error {
	var body io.Reader
	contentType := r.ContentType

	switch {
	case r.RawBody != nil:
		body = r.RawBody
	case r.Body != nil:
		buf, err := json.Marshal(r.Body)
		if err != nil {
			return fmt.Errorf("backend: encode %s %s: %w", r.Method, r.Path, err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, c.baseURL+r.Path, body)
	if err != nil {
		return fmt.Errorf("backend: build %s %s: %w", r.Method, r.Path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	if r.CSRF != "" {
		req.Header.Set("X-CSRFToken", r.CSRF)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", r.Method, r.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: read %s %s: %w", r.Method, r.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, raw)
	}

	if r.Out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, r.Out); err != nil {
			return fmt.Errorf("backend: decode %s %s: %w", r.Method, r.Path, err)
		}
	}
	return nil
}

// cookieValue returns the named cookie captured from the backend, if any.
func (c *Client) cookieValue(name string) string {
	u, err := urlOf(c.baseURL)
	if err != nil {
		return ""
	}
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}
