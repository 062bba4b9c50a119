package pages

import (
	"context"
	"errors"
	"strings"

	"github.com/campusinsider/campus-insider/internal/client"
)

// RegisterPage creates accounts.
type RegisterPage struct {
	api *client.APIClient
}

// NewRegisterPage creates the registration controller.
func NewRegisterPage(api *client.APIClient) *RegisterPage {
	return &RegisterPage{api: api}
}

// RegisterForm is the registration form state.
type RegisterForm struct {
	Username        string
	Password        string
	ConfirmPassword string
	Role            string
	University      string
	State           string
}

// Submit validates the form client-side and creates the account. The
// backend re-validates everything; these checks only short-circuit the
// obvious mistakes before a round-trip.
func (p *RegisterPage) Submit(ctx context.Context, form RegisterForm) error {
	username := strings.TrimSpace(form.Username)

	switch {
	case username == "" || form.Password == "":
		return errors.New("username and password are required")
	case form.Password != form.ConfirmPassword:
		return errors.New("passwords do not match")
	case strings.Contains(strings.ToLower(username), "admin"):
		return errors.New("username must not contain \"admin\"")
	case strings.TrimSpace(form.University) == "":
		return errors.New("university is required")
	}

	return p.api.Register(ctx, client.RegisterPayload{
		Username:   username,
		Password:   form.Password,
		Role:       form.Role,
		University: strings.TrimSpace(form.University),
		State:      strings.TrimSpace(form.State),
	})
}
