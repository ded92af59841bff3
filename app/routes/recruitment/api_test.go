package recruitment

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

func newFormApp(t *testing.T) (*fiber.App, *session.Store) {
	t.Helper()

	engine := html.New("../../templates", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
	})

	api := backend.New("http://backend.invalid", time.Second)
	sessions := session.New("mbg_session", time.Hour)
	SetupRecruitmentRoutes(app, api, sessions)

	app.Post("/test/login", func(c *fiber.Ctx) error {
		return sessions.SetAuth(c, session.Auth{
			Access: "candidate-token",
			User:   models.User{Email: "jane@example.com"},
		})
	})
	app.Get("/test/progress", func(c *fiber.Ctx) error {
		step, data, ok := sessions.FormProgress(c)
		return c.JSON(fiber.Map{"ok": ok, "step": step, "full_name": data.FullName})
	})
	return app, sessions
}

func loginCandidate(t *testing.T, app *fiber.App) []*http.Cookie {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/test/login", nil), 10000)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Cookies())
	return resp.Cookies()
}

func postStep(t *testing.T, app *fiber.App, path string, form url.Values, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func progress(t *testing.T, app *fiber.App, cookies []*http.Cookie) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test/progress", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)

	var out struct {
		Step     int    `json:"step"`
		FullName string `json:"full_name"`
	}
	require.NoError(t, decodeJSON(resp, &out))
	return out.Step, out.FullName
}

func decodeJSON(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

func TestApplyRequiresLogin(t *testing.T) {
	app, _ := newFormApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/recruitment/apply", nil), 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/account/register", resp.Header.Get("Location"))
}

func TestNextAdvancesAndPersistsProgress(t *testing.T) {
	app, _ := newFormApp(t)
	cookies := loginCandidate(t, app)

	resp := postStep(t, app, "/recruitment/apply/next", url.Values{
		"full_name": {"Jane Wanjiku"},
		"email":     {"jane@example.com"},
		"phone":     {"+254700000001"},
		"location":  {"Nairobi"},
	}, cookies)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	step, fullName := progress(t, app, cookies)
	assert.Equal(t, 1, step)
	assert.Equal(t, "Jane Wanjiku", fullName)
}

func TestNextBlockedByStepValidation(t *testing.T) {
	app, _ := newFormApp(t)
	cookies := loginCandidate(t, app)

	// Email invalid: the step must not advance.
	postStep(t, app, "/recruitment/apply/next", url.Values{
		"full_name": {"Jane Wanjiku"},
		"email":     {"not-an-email"},
		"phone":     {"+254700000001"},
		"location":  {"Nairobi"},
	}, cookies)

	step, _ := progress(t, app, cookies)
	assert.Equal(t, 0, step)
}

func TestBackIsUnguarded(t *testing.T) {
	app, _ := newFormApp(t)
	cookies := loginCandidate(t, app)

	// Advance past the first step, then go back with empty fields.
	postStep(t, app, "/recruitment/apply/next", url.Values{
		"full_name": {"Jane Wanjiku"},
		"email":     {"jane@example.com"},
		"phone":     {"+254700000001"},
		"location":  {"Nairobi"},
	}, cookies)

	postStep(t, app, "/recruitment/apply/back", url.Values{}, cookies)

	step, fullName := progress(t, app, cookies)
	assert.Equal(t, 0, step)
	assert.Equal(t, "Jane Wanjiku", fullName, "entered data survives back navigation")
}
