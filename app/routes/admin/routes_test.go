package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

func newAdminApp(t *testing.T, backendHandler http.Handler) (*fiber.App, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	engine := html.New("../../templates", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
	})

	api := backend.New(srv.URL, 5*time.Second)
	sessions := session.New("mbg_session", time.Hour)
	SetupAdminRoutes(app, api, sessions)

	// Test-only login seeding an admin profile.
	app.Post("/test/login", func(c *fiber.Ctx) error {
		return sessions.SetAuth(c, session.Auth{
			Access: "admin-token",
			User:   models.User{Email: "admin@mbg.co.ke", IsStaff: true},
		})
	})
	app.Get("/test/auth", func(c *fiber.Ctx) error {
		_, ok := sessions.Auth(c)
		return c.JSON(fiber.Map{"ok": ok})
	})
	return app, sessions
}

func login(t *testing.T, app *fiber.App) []*http.Cookie {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/test/login", nil), 10000)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Cookies())
	return resp.Cookies()
}

func get(t *testing.T, app *fiber.App, path string, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func TestAdminRequiresLogin(t *testing.T) {
	app, _ := newAdminApp(t, http.NotFoundHandler())

	resp := get(t, app, "/admin", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/account/register", resp.Header.Get("Location"))
}

func TestBackendUnauthorizedForcesLogout(t *testing.T) {
	app, _ := newAdminApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Token expired"}`))
	}))
	cookies := login(t, app)

	// The client-side admin hint passes, the backend says no: local state
	// is cleared and the user lands on the login page.
	resp := get(t, app, "/admin", cookies)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/account/register", resp.Header.Get("Location"))

	authResp := get(t, app, "/test/auth", cookies)
	assert.Contains(t, readBody(t, authResp), `"ok":false`)
}

func TestDashboardRendersFilteredList(t *testing.T) {
	app, _ := newAdminApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "S1", "full_name": "Jane Wanjiku", "email": "jane@example.com", "status": "accepted"},
			{"id": "S2", "full_name": "Peter Otieno", "email": "peter@example.com", "status": "pending"},
			{"id": "S3", "full_name": "Amina Hassan", "email": "amina@example.com", "status": "accepted"}
		]`))
	}))
	cookies := login(t, app)

	resp := get(t, app, "/admin?status=accepted", cookies)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "Jane Wanjiku")
	assert.Contains(t, body, "Amina Hassan")
	assert.NotContains(t, body, "Peter Otieno")
}

func TestExportDownloadsFilteredCSV(t *testing.T) {
	app, _ := newAdminApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "S1", "full_name": "Jane Wanjiku", "email": "jane@example.com", "status": "accepted"},
			{"id": "S2", "full_name": "Peter Otieno", "email": "peter@example.com", "status": "pending"}
		]`))
	}))
	cookies := login(t, app)

	resp := get(t, app, "/admin/export.csv?status=accepted", cookies)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	body := readBody(t, resp)
	assert.Contains(t, body, `"Jane Wanjiku"`)
	assert.NotContains(t, body, "Peter Otieno")
}
