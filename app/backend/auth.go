package backend

import (
	"context"
	"net/http"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// LoginResult is the token pair plus profile snapshot returned at login.
type LoginResult struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    models.User `json:"user"`
}

// Login exchanges credentials for tokens. Credentials are forwarded
// verbatim; this client never stores or hashes passwords.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/auth/login/",
		Body: map[string]string{
			"email":    email,
			"password": password,
		},
		Out: &result,
	})
	return result, err
}

// Register creates a new account. The backend sends the verification email.
func (c *Client) Register(ctx context.Context, email, password, firstName, lastName string) error {
	return c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/auth/register/",
		Body: map[string]string{
			"email":      email,
			"password":   password,
			"first_name": firstName,
			"last_name":  lastName,
		},
	})
}

// Logout invalidates the refresh token server-side. Best effort; the local
// session is cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context, token, refresh string) error {
	return c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/auth/logout/",
		Token:  token,
		Body:   map[string]string{"refresh": refresh},
	})
}

// VerifyEmail confirms an address using the token from the verification link.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/auth/verify-email/",
		Body:   map[string]string{"token": token},
	})
}

// ConfirmPasswordReset sets a new password using the emailed reset token.
func (c *Client) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword string) error {
	return c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/auth/password-reset/confirm/",
		Body: map[string]string{
			"uid":          uid,
			"token":        token,
			"new_password": newPassword,
		},
	})
}
