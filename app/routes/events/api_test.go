package events

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/payments"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

type stubBackend struct {
	mux           *http.ServeMux
	registerCalls int32
	initiateCalls int32
	lastInitiated atomic.Value
}

// newStubBackend serves a paid event E1, accepts registrations as R1, and
// returns a provider redirect on initiate.
func newStubBackend(t *testing.T) (*stubBackend, string) {
	t.Helper()
	sb := &stubBackend{mux: http.NewServeMux()}

	sb.mux.HandleFunc("/events/E1/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "E1", "title": "Closing Masterclass", "start_date": "2026-10-01",
			"is_free": false, "currency": "KES", "amount": "15000",
			"status": "open", "registration_open": true
		}`))
	})
	sb.mux.HandleFunc("/events/E1/register/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&sb.registerCalls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "R1", "payment_required": true}`))
	})
	sb.mux.HandleFunc("/get-csrf-token/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"csrfToken": "tok"}`))
	})
	sb.mux.HandleFunc("/payments/initiate/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&sb.initiateCalls, 1)
		sb.lastInitiated.Store(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"payment_id": "P1", "order_tracking_id": "OT-77",
			"status": "pending", "payment_url": "https://pay.example/x"
		}`))
	})

	srv := httptest.NewServer(sb.mux)
	t.Cleanup(srv.Close)
	return sb, srv.URL
}

func newTestApp(t *testing.T, backendURL string) (*fiber.App, *session.Store) {
	t.Helper()

	engine := html.New("../../templates", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
	})

	api := backend.New(backendURL, 5*time.Second)
	sessions := session.New("mbg_session", time.Hour)
	initiator := payments.NewInitiator(api)

	SetupEventsRoutes(app, api, sessions, initiator)
	return app, sessions
}

func postForm(app *fiber.App, path string, form url.Values) (*http.Response, error) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return app.Test(req, 10000)
}

func TestRegisterMissingFieldSkipsBackend(t *testing.T) {
	sb, backendURL := newStubBackend(t)
	app, _ := newTestApp(t, backendURL)

	resp, err := postForm(app, "/events/E1/register", url.Values{
		"full_name": {"Jane Wanjiku"},
		"email":     {"jane@example.com"},
		// phone, company, job_title missing
	})
	require.NoError(t, err)

	// The form re-renders with a validation notice; no registration call.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(0), atomic.LoadInt32(&sb.registerCalls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&sb.initiateCalls))
}

func TestRegisterBadEmailSkipsBackend(t *testing.T) {
	sb, backendURL := newStubBackend(t)
	app, _ := newTestApp(t, backendURL)

	resp, err := postForm(app, "/events/E1/register", url.Values{
		"full_name": {"Jane Wanjiku"},
		"email":     {"not-an-email"},
		"phone":     {"+254700000001"},
		"company":   {"Acme Ltd"},
		"job_title": {"Sales Lead"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(0), atomic.LoadInt32(&sb.registerCalls))
}

func TestPaidRegistrationHandsOffToPaymentOnce(t *testing.T) {
	sb, backendURL := newStubBackend(t)
	app, _ := newTestApp(t, backendURL)

	resp, err := postForm(app, "/events/E1/register", url.Values{
		"full_name": {"Jane Wanjiku"},
		"email":     {"jane@example.com"},
		"phone":     {"+254700000001"},
		"company":   {"Acme Ltd"},
		"job_title": {"Sales Lead"},
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&sb.registerCalls))
	// Exactly one initiation, with the backend-assigned registration id.
	assert.Equal(t, int32(1), atomic.LoadInt32(&sb.initiateCalls))
	assert.Equal(t, "/payments/initiate/R1/", sb.lastInitiated.Load())

	// Browser is sent to the provider.
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "https://pay.example/x", resp.Header.Get("Location"))

	// The session cookie carries the resume keys across the redirect.
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)
}
