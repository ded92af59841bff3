package session

import (
	"log"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// Session value keys. The pending-payment keys survive the round trip to
// the external payment provider because the session cookie does.
const (
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
	keyUserProfile  = "userProfile"

	KeyPendingRegistration        = "pendingRegistration"
	KeyPendingProgramRegistration = "pendingProgramRegistration"
	KeyPendingPayment             = "pendingPayment"
	KeyPendingProgramPayment      = "pendingProgramPayment"
	KeyPendingOrderTracking       = "pendingOrderTracking"

	keyFormStep = "capabilityFormStep"
	keyFormData = "capabilityFormData"

	keyFlashKind = "flashKind"
	keyFlashText = "flashText"
)

// Auth is the per-visitor authentication state: backend tokens plus a
// profile snapshot. A display hint only — the backend re-authorizes every
// protected call.
type Auth struct {
	Access  string
	Refresh string
	User    models.User
}

// Change describes an auth-state transition delivered to subscribers.
type Change struct {
	LoggedIn bool
	Email    string
}

// Store wraps the cookie-keyed session with explicit load/set/clear
// operations and change notification, replacing ad-hoc storage reads
// scattered per handler.
type Store struct {
	sessions *fibersession.Store

	mu     sync.Mutex
	nextID int
	subs   map[int]func(Change)
}

// New builds a store with the given cookie name and TTL.
func New(cookieName string, ttl time.Duration) *Store {
	return &Store{
		sessions: fibersession.New(fibersession.Config{
			KeyLookup:      "cookie:" + cookieName,
			Expiration:     ttl,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		}),
		subs: map[int]func(Change){},
	}
}

// Subscribe registers a callback for auth changes and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(ch Change) {
	s.mu.Lock()
	subs := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(ch)
	}
}

// Auth loads the visitor's auth state. A token past its expiry claim
// counts as logged out; the signature is never checked here (that is the
// backend's job), only the exp timestamp.
func (s *Store) Auth(c *fiber.Ctx) (Auth, bool) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return Auth{}, false
	}
	access, _ := sess.Get(keyAccessToken).(string)
	if access == "" || tokenExpired(access) {
		return Auth{}, false
	}
	auth := Auth{Access: access}
	auth.Refresh, _ = sess.Get(keyRefreshToken).(string)
	if blob, ok := sess.Get(keyUserProfile).(string); ok {
		_ = json.Unmarshal([]byte(blob), &auth.User)
	}
	return auth, true
}

// SetAuth stores tokens and profile after a successful login.
func (s *Store) SetAuth(c *fiber.Ctx, auth Auth) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	blob, err := json.Marshal(auth.User)
	if err != nil {
		return err
	}
	sess.Set(keyAccessToken, auth.Access)
	sess.Set(keyRefreshToken, auth.Refresh)
	sess.Set(keyUserProfile, string(blob))
	if err := sess.Save(); err != nil {
		return err
	}
	s.notify(Change{LoggedIn: true, Email: auth.User.Email})
	return nil
}

// Clear drops the auth state. Used by explicit logout and by the forced
// logout on a backend 401/403. Pending-payment and form keys survive so
// an expired login does not lose an in-flight payment.
func (s *Store) Clear(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	email := ""
	if blob, ok := sess.Get(keyUserProfile).(string); ok {
		var u models.User
		if json.Unmarshal([]byte(blob), &u) == nil {
			email = u.Email
		}
	}
	sess.Delete(keyAccessToken)
	sess.Delete(keyRefreshToken)
	sess.Delete(keyUserProfile)
	if err := sess.Save(); err != nil {
		return err
	}
	s.notify(Change{LoggedIn: false, Email: email})
	return nil
}

// tokenExpired peeks at the exp claim without verifying the signature.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque (non-JWT) tokens are passed through untouched.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// LogChanges is a ready-made subscriber that mirrors auth transitions to
// the application log.
func LogChanges(ch Change) {
	if ch.LoggedIn {
		log.Printf("session: login %s", ch.Email)
		return
	}
	log.Printf("session: logout %s", ch.Email)
}
