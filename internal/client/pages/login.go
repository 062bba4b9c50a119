package pages

import (
	"context"
	"errors"
	"strings"

	"github.com/campusinsider/campus-insider/internal/client"
	"github.com/campusinsider/campus-insider/internal/client/session"
)

// LoginPage authenticates and stores the resulting session.
type LoginPage struct {
	api      *client.APIClient
	sessions *session.Holder
}

// NewLoginPage creates the login controller.
func NewLoginPage(api *client.APIClient, sessions *session.Holder) *LoginPage {
	return &LoginPage{api: api, sessions: sessions}
}

// Submit validates the form, authenticates, and persists the session.
// Validation errors are returned before any request is made.
func (p *LoginPage) Submit(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errors.New("username and password are required")
	}

	result, err := p.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	return p.sessions.Login(session.User{
		Username:     username,
		Role:         result.Role,
		UniversityID: result.UniversityID,
		Token:        result.Token,
	})
}

// Logout clears the persisted user record.
func (p *LoginPage) Logout() error {
	return p.sessions.Logout()
}
