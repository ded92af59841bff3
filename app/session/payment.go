package session

import (
	"github.com/gofiber/fiber/v2"
)

// PendingPayment is the resume state written just before the browser
// leaves for the payment provider.
type PendingPayment struct {
	RegistrationID  string
	PaymentID       string
	OrderTrackingID string
	Program         bool
}

func (p PendingPayment) registrationKey() string {
	if p.Program {
		return KeyPendingProgramRegistration
	}
	return KeyPendingRegistration
}

func (p PendingPayment) paymentKey() string {
	if p.Program {
		return KeyPendingProgramPayment
	}
	return KeyPendingPayment
}

// SetPendingPayment stores the three resume keys.
func (s *Store) SetPendingPayment(c *fiber.Ctx, p PendingPayment) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(p.registrationKey(), p.RegistrationID)
	sess.Set(p.paymentKey(), p.PaymentID)
	sess.Set(KeyPendingOrderTracking, p.OrderTrackingID)
	return sess.Save()
}

// PendingPayment loads the resume state, preferring the event-side keys
// when both somehow exist.
func (s *Store) PendingPayment(c *fiber.Ctx) (PendingPayment, bool) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return PendingPayment{}, false
	}
	p := PendingPayment{}
	if reg, ok := sess.Get(KeyPendingRegistration).(string); ok && reg != "" {
		p.RegistrationID = reg
		p.PaymentID, _ = sess.Get(KeyPendingPayment).(string)
	} else if reg, ok := sess.Get(KeyPendingProgramRegistration).(string); ok && reg != "" {
		p.Program = true
		p.RegistrationID = reg
		p.PaymentID, _ = sess.Get(KeyPendingProgramPayment).(string)
	} else {
		return PendingPayment{}, false
	}
	p.OrderTrackingID, _ = sess.Get(KeyPendingOrderTracking).(string)
	return p, true
}

// ClearPendingPayment removes all pending keys, both variants.
func (s *Store) ClearPendingPayment(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Delete(KeyPendingRegistration)
	sess.Delete(KeyPendingProgramRegistration)
	sess.Delete(KeyPendingPayment)
	sess.Delete(KeyPendingProgramPayment)
	sess.Delete(KeyPendingOrderTracking)
	return sess.Save()
}
