package backend

import (
	"context"
	"net/http"

	"github.com/Smart-sales-Kenya/mbg-frontend-sub000/app/models"
)

// ListPrograms fetches the training program catalogue.
func (c *Client) ListPrograms(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/programs/",
		Out:    &programs,
	})
	return programs, err
}

// GetProgram fetches one program by id.
func (c *Client) GetProgram(ctx context.Context, id string) (models.Program, error) {
	var program models.Program
	err := c.do(ctx, request{
		Method: http.MethodGet,
		Path:   "/programs/" + id + "/",
		Out:    &program,
	})
	return program, err
}

// CreateProgramRegistration submits a program registration.
func (c *Client) CreateProgramRegistration(ctx context.Context, reg models.ProgramRegistration) (models.ProgramRegistration, error) {
	var created models.ProgramRegistration
	err := c.do(ctx, request{
		Method: http.MethodPost,
		Path:   "/programs/" + reg.ProgramID + "/register/",
		Body:   reg,
		Out:    &created,
	})
	return created, err
}
