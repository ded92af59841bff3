package recruitment

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/routes/shared"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

// nextStepAPI reads the current step's fields, validates them, and
// advances. A validation failure re-renders the same step and issues no
// backend request.
func (h *handlers) nextStepAPI(c *fiber.Ctx) error {
	stepIdx, sub, _ := h.sessions.FormProgress(c)
	stepIdx = clampStep(stepIdx)

	steps[stepIdx].Read(c, &sub)
	if msg := steps[stepIdx].Validate(sub); msg != "" {
		return h.renderStep(c, stepIdx, sub, msg)
	}

	if stepIdx < lastStep() {
		stepIdx++
	}
	if err := h.sessions.SaveFormProgress(c, stepIdx, sub); err != nil {
		log.Printf("recruitment: save form progress: %v", err)
	}
	return h.renderStep(c, stepIdx, sub, "")
}

// backStepAPI saves whatever was entered and steps back, unguarded.
func (h *handlers) backStepAPI(c *fiber.Ctx) error {
	stepIdx, sub, _ := h.sessions.FormProgress(c)
	stepIdx = clampStep(stepIdx)

	steps[stepIdx].Read(c, &sub)
	if stepIdx > 0 {
		stepIdx--
	}
	if err := h.sessions.SaveFormProgress(c, stepIdx, sub); err != nil {
		log.Printf("recruitment: save form progress: %v", err)
	}
	return h.renderStep(c, stepIdx, sub, "")
}

// submitAPI validates every step, then sends the assembled submission as
// multipart (so the optional resume rides along) — POST for a new one,
// PATCH when editing.
func (h *handlers) submitAPI(c *fiber.Ctx) error {
	auth := c.Locals("auth").(session.Auth)

	stepIdx, sub, ok := h.sessions.FormProgress(c)
	if !ok {
		h.sessions.Flash(c, session.FlashError, "Your application session expired. Please start again.")
		return c.Redirect("/recruitment/apply")
	}
	steps[clampStep(stepIdx)].Read(c, &sub)

	// Full re-validation: jumping back and forth must not bypass a step.
	for i, s := range steps {
		if msg := s.Validate(sub); msg != "" {
			return h.renderStep(c, i, sub, msg)
		}
	}

	var resume *backend.ResumeUpload
	if file, err := c.FormFile("resume"); err == nil && file != nil {
		f, err := file.Open()
		if err == nil {
			content, readErr := io.ReadAll(f)
			f.Close()
			if readErr == nil {
				resume = &backend.ResumeUpload{Filename: file.Filename, Content: content}
			}
		}
	}

	csrf, err := h.api.CSRFToken(c.Context())
	if err != nil {
		log.Printf("recruitment: csrf token fetch failed, continuing without: %v", err)
	}

	if sub.ID != "" {
		_, err = h.api.UpdateSubmission(c.Context(), auth.Access, csrf, sub, resume)
	} else {
		_, err = h.api.CreateSubmission(c.Context(), auth.Access, csrf, sub, resume)
	}
	if err != nil {
		if backend.IsAuth(err) {
			return shared.BackendFailure(c, h.sessions, err, "/recruitment")
		}
		// Backend field errors come through verbatim.
		return h.renderStep(c, lastStep(), sub, err.Error())
	}

	if err := h.sessions.ClearFormProgress(c); err != nil {
		log.Printf("recruitment: clear form progress: %v", err)
	}
	return c.Redirect("/recruitment/thank-you")
}

func (h *handlers) renderDashboardPage(c *fiber.Ctx) error {
	auth := c.Locals("auth").(session.Auth)
	data := shared.View(c, h.sessions, "My Application", "recruitment")

	sub, err := h.api.GetMySubmission(c.Context(), auth.Access)
	if err != nil {
		if backend.IsAuth(err) {
			return shared.BackendFailure(c, h.sessions, err, "/recruitment")
		}
		// Not having a submission yet is the empty dashboard, not an error page.
		data["HasSubmission"] = false
		return c.Render("recruitment/dashboard", data)
	}

	data["HasSubmission"] = true
	data["Submission"] = sub
	return c.Render("recruitment/dashboard", data)
}

func (h *handlers) deleteSubmissionAPI(c *fiber.Ctx) error {
	auth := c.Locals("auth").(session.Auth)

	sub, err := h.api.GetMySubmission(c.Context(), auth.Access)
	if err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/recruitment/dashboard")
	}

	csrf, err := h.api.CSRFToken(c.Context())
	if err != nil {
		log.Printf("recruitment: csrf token fetch failed, continuing without: %v", err)
	}

	if err := h.api.DeleteSubmission(c.Context(), auth.Access, csrf, sub.ID); err != nil {
		return shared.BackendFailure(c, h.sessions, err, "/recruitment/dashboard")
	}

	h.sessions.Flash(c, session.FlashSuccess, "Your application was withdrawn.")
	return c.Redirect("/recruitment/dashboard")
}
