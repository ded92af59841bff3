package backend

import (
	"context"
	"net/http"
)

// CSRFToken obtains an anti-forgery token for state-changing requests.
// The dedicated endpoint is tried first; if it fails, the csrftoken cookie
// captured on an earlier response is used as a fallback.
func (c *Client) CSRFToken(ctx context.Context) (string, error) {
	var out struct {
		Token string `json:"csrfToken"`
	}
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/get-csrf-token/",
		Out:    &out,
	})
	if err == nil && out.Token != "" {
		return out.Token, nil
	}
	if fallback := c.cookieValue("csrftoken"); fallback != "" {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return "", nil
}
