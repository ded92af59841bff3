package shared

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/backend"
	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/session"
)

// LoginRoute is where forced logouts land. The registration/login page is
// one combined route.
const LoginRoute = "/account/register"

// View builds the base render map every page starts from: title, current
// nav item, auth display hints, and any pending flash notification.
func View(c *fiber.Ctx, sessions *session.Store, title, page string) fiber.Map {
	data := fiber.Map{
		"Title":       title + " - MBG Sales Training",
		"CurrentPage": page,
		"IsLoggedIn":  false,
		"IsAdmin":     false,
	}
	if auth, ok := sessions.Auth(c); ok {
		data["IsLoggedIn"] = true
		data["IsAdmin"] = auth.User.IsAdmin()
		data["User"] = auth.User
		data["FirstName"] = auth.User.FirstName
		data["LastName"] = auth.User.LastName
		data["Email"] = auth.User.Email
	}
	if kind, text, ok := sessions.PopFlash(c); ok {
		data["FlashKind"] = kind
		data["FlashText"] = text
	}
	return data
}

// BackendFailure handles an error from a backend call uniformly: a 401/403
// clears the local auth state and redirects to the login page (real
// authorization lives server-side; this client only reacts to it), any
// other error becomes a flash on the given fallback route.
func BackendFailure(c *fiber.Ctx, sessions *session.Store, err error, fallback string) error {
	if backend.IsAuth(err) {
		if clearErr := sessions.Clear(c); clearErr != nil {
			log.Printf("shared: session clear after auth failure: %v", clearErr)
		}
		return c.Redirect(LoginRoute)
	}
	sessions.Flash(c, session.FlashError, err.Error())
	return c.Redirect(fallback)
}
