package backend

import (
	"context"
	"net/http"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// ListTeam fetches the staff profiles for the team page.
func (c *Client) ListTeam(ctx context.Context) ([]models.TeamMember, error) {
	var team []models.TeamMember
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/team/",
		Out:    &team,
	})
	return team, err
}

// ListGalleryCategories fetches gallery groupings.
func (c *Client) ListGalleryCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	var cats []models.GalleryCategory
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/gallery/categories/",
		Out:    &cats,
	})
	return cats, err
}

// ListGalleryItems fetches gallery images, optionally by category.
func (c *Client) ListGalleryItems(ctx context.Context, categoryID string) ([]models.GalleryItem, error) {
	path := "/gallery/items/"
	if categoryID != "" {
		path += "?category=" + categoryID
	}
	var items []models.GalleryItem
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   path,
		Out:    &items,
	})
	return items, err
}

// SendContactMessage forwards a contact-form message.
func (c *Client) SendContactMessage(ctx context.Context, msg models.ContactMessage) error {
	return c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/contact/",
		Body:   msg,
	})
}
