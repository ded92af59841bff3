package account

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/forms"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/shared"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

type loginForm struct {
	Email    string `json:"email" form:"email" validate:"required,relaxed_email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type registerForm struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required"`
	LastName  string `json:"last_name" form:"last_name" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,relaxed_email"`
	Password  string `json:"password" form:"password" validate:"required,min=8"`
}

func (h *handlers) renderRegisterPage(c *fiber.Ctx) error {
	// Already logged in: straight to the right dashboard.
	if auth, ok := h.sessions.Auth(c); ok {
		if auth.User.IsAdmin() {
			return c.Redirect("/admin")
		}
		return c.Redirect("/recruitment/dashboard")
	}
	return c.Render("account/register", shared.View(c, h.sessions, "Sign In", "account"))
}

func (h *handlers) loginAPI(c *fiber.Ctx) error {
	var form loginForm
	if err := c.BodyParser(&form); err != nil {
		h.sessions.Flash(c, session.FlashError, "Invalid request.")
		return c.Redirect(shared.LoginRoute)
	}
	if msg := forms.Check(form); msg != "" {
		h.sessions.Flash(c, session.FlashError, msg)
		return c.Redirect(shared.LoginRoute)
	}

	result, err := h.api.Login(c.Context(), form.Email, form.Password)
	if err != nil {
		h.sessions.Flash(c, session.FlashError, err.Error())
		return c.Redirect(shared.LoginRoute)
	}

	if err := h.sessions.SetAuth(c, session.Auth{
		Access:  result.Access,
		Refresh: result.Refresh,
		User:    result.User,
	}); err != nil {
		log.Printf("account: store auth state: %v", err)
		h.sessions.Flash(c, session.FlashError, "Could not start your session. Please try again.")
		return c.Redirect(shared.LoginRoute)
	}

	if result.User.IsAdmin() {
		return c.Redirect("/admin")
	}
	return c.Redirect("/recruitment/dashboard")
}

func (h *handlers) registerAPI(c *fiber.Ctx) error {
	var form registerForm
	if err := c.BodyParser(&form); err != nil {
		h.sessions.Flash(c, session.FlashError, "Invalid request.")
		return c.Redirect(shared.LoginRoute)
	}
	if msg := forms.Check(form); msg != "" {
		h.sessions.Flash(c, session.FlashError, msg)
		return c.Redirect(shared.LoginRoute)
	}

	if err := h.api.Register(c.Context(), form.Email, form.Password, form.FirstName, form.LastName); err != nil {
		h.sessions.Flash(c, session.FlashError, err.Error())
		return c.Redirect(shared.LoginRoute)
	}

	h.sessions.Flash(c, session.FlashSuccess, "Account created. Check your email for a verification link.")
	return c.Redirect(shared.LoginRoute)
}

func (h *handlers) logoutAPI(c *fiber.Ctx) error {
	if auth, ok := h.sessions.Auth(c); ok {
		// Best effort; the local session is cleared regardless.
		if err := h.api.Logout(c.Context(), auth.Access, auth.Refresh); err != nil {
			log.Printf("account: backend logout: %v", err)
		}
	}
	if err := h.sessions.Clear(c); err != nil {
		log.Printf("account: session clear: %v", err)
	}
	return c.Redirect("/")
}

func (h *handlers) verifyEmailPage(c *fiber.Ctx) error {
	token := c.Query("token")
	data := shared.View(c, h.sessions, "Email Verification", "account")
	if token == "" {
		data["Verified"] = false
		data["Message"] = "The verification link is missing its token."
		return c.Render("account/verify_email", data)
	}
	if err := h.api.VerifyEmail(c.Context(), token); err != nil {
		data["Verified"] = false
		data["Message"] = err.Error()
		return c.Render("account/verify_email", data)
	}
	data["Verified"] = true
	data["Message"] = "Your email address is verified. You can sign in now."
	return c.Render("account/verify_email", data)
}

func (h *handlers) renderPasswordResetPage(c *fiber.Ctx) error {
	data := shared.View(c, h.sessions, "Reset Password", "account")
	data["UID"] = c.Query("uid")
	data["Token"] = c.Query("token")
	return c.Render("account/password_reset", data)
}

type passwordResetForm struct {
	UID         string `json:"uid" form:"uid" validate:"required"`
	Token       string `json:"token" form:"token" validate:"required"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required,min=8"`
}

func (h *handlers) passwordResetAPI(c *fiber.Ctx) error {
	var form passwordResetForm
	if err := c.BodyParser(&form); err != nil {
		h.sessions.Flash(c, session.FlashError, "Invalid request.")
		return c.Redirect("/account/password-reset")
	}
	if msg := forms.Check(form); msg != "" {
		h.sessions.Flash(c, session.FlashError, msg)
		return c.Redirect("/account/password-reset?uid=" + form.UID + "&token=" + form.Token)
	}

	if err := h.api.ConfirmPasswordReset(c.Context(), form.UID, form.Token, form.NewPassword); err != nil {
		h.sessions.Flash(c, session.FlashError, err.Error())
		return c.Redirect("/account/password-reset?uid=" + form.UID + "&token=" + form.Token)
	}

	h.sessions.Flash(c, session.FlashSuccess, "Password updated. Sign in with your new password.")
	return c.Redirect(shared.LoginRoute)
}
