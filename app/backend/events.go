package backend

import (
	"context"
	"net/http"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// ListEvents fetches all published events.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/events/",
		Out:    &events,
	})
	return events, err
}

// GetEvent fetches one event by id.
func (c *Client) GetEvent(ctx context.Context, id string) (models.Event, error) {
	var event models.Event
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/events/" + id + "/",
		Out:    &event,
	})
	return event, err
}

// CreateEventRegistration submits a registration. The response carries the
// backend-assigned id and the payment_required derivation.
func (c *Client) CreateEventRegistration(ctx context.Context, reg models.EventRegistration) (models.EventRegistration, error) {
	var created models.EventRegistration
	err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/events/" + reg.EventID + "/register/",
		Body:   reg,
		Out:    &created,
	})
	return created, err
}
