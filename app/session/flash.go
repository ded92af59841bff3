package session

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// Flash kinds rendered as notification styles.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash stores a one-shot notification for the next rendered page.
func (s *Store) Flash(c *fiber.Ctx, kind, text string) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return
	}
	sess.Set(keyFlashKind, kind)
	sess.Set(keyFlashText, text)
	_ = sess.Save()
}

// PopFlash returns and clears the pending notification, if any.
func (s *Store) PopFlash(c *fiber.Ctx) (kind, text string, ok bool) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return "", "", false
	}
	text, _ = sess.Get(keyFlashText).(string)
	if text == "" {
		return "", "", false
	}
	kind, _ = sess.Get(keyFlashKind).(string)
	sess.Delete(keyFlashKind)
	sess.Delete(keyFlashText)
	_ = sess.Save()
	return kind, text, true
}

// SaveFormProgress persists the capability form's current step and data
// so a reload resumes where the candidate left off.
func (s *Store) SaveFormProgress(c *fiber.Ctx, step int, data models.CapabilitySubmission) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	blob, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(keyFormStep, step)
	sess.Set(keyFormData, string(blob))
	return sess.Save()
}

// FormProgress loads saved capability-form state.
func (s *Store) FormProgress(c *fiber.Ctx) (int, models.CapabilitySubmission, bool) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return 0, models.CapabilitySubmission{}, false
	}
	step, ok := sess.Get(keyFormStep).(int)
	if !ok {
		return 0, models.CapabilitySubmission{}, false
	}
	var data models.CapabilitySubmission
	if blob, ok := sess.Get(keyFormData).(string); ok {
		_ = json.Unmarshal([]byte(blob), &data)
	}
	return step, data, true
}

// ClearFormProgress drops saved capability-form state.
func (s *Store) ClearFormProgress(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Delete(keyFormStep)
	sess.Delete(keyFormData)
	return sess.Save()
}
