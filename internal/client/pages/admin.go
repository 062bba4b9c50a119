package pages

import (
	"context"
	"errors"

	"github.com/campusinsider/campus-insider/internal/client"
	"github.com/campusinsider/campus-insider/internal/client/session"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// ErrNotAdmin is returned when a non-admin session opens the admin
// page; callers redirect away on it.
var ErrNotAdmin = errors.New("admin access required")

// AdminPage drives the management view: accounts, pending location
// requests, and directory mutation. The gate here is a UI affordance;
// the backend independently rejects non-admin tokens.
type AdminPage struct {
	admin    *client.AdminClient
	sessions *session.Holder

	users        Resource[[]entities.User]
	requests     Resource[[]entities.LocationRequest]
	universities Resource[[]entities.University]
	campuses     Resource[[]entities.Campus]
}

// NewAdminPage creates the controller, or ErrNotAdmin when the current
// session is not the admin account.
func NewAdminPage(api *client.APIClient, sessions *session.Holder) (*AdminPage, error) {
	if !sessions.IsAdmin() {
		return nil, ErrNotAdmin
	}
	token := ""
	if user := sessions.CurrentUser(); user != nil {
		token = user.Token
	}
	return &AdminPage{admin: api.Admin(token), sessions: sessions}, nil
}

// LoadUsers fetches the account list.
func (p *AdminPage) LoadUsers(ctx context.Context) {
	p.users.Load(ctx, p.admin.ListUsers)
}

// Users returns the loaded account list.
func (p *AdminPage) Users() []entities.User {
	return p.users.Value()
}

// LoadRequests fetches pending location requests.
func (p *AdminPage) LoadRequests(ctx context.Context) {
	p.requests.Load(ctx, p.admin.ListRequestedRooms)
}

// Requests returns the loaded request list.
func (p *AdminPage) Requests() []entities.LocationRequest {
	return p.requests.Value()
}

// LoadUniversities fetches the directory's universities.
func (p *AdminPage) LoadUniversities(ctx context.Context) {
	p.universities.Load(ctx, p.admin.ListUniversities)
}

// Universities returns the loaded university list.
func (p *AdminPage) Universities() []entities.University {
	return p.universities.Value()
}

// AddUniversity creates a university and refreshes the list. On error
// the previously loaded list is preserved.
func (p *AdminPage) AddUniversity(ctx context.Context, name, state, wikiURL string) error {
	if _, err := p.admin.CreateUniversity(ctx, name, state, wikiURL); err != nil {
		return err
	}
	p.LoadUniversities(ctx)
	return nil
}

// LoadCampuses fetches the campuses of one university.
func (p *AdminPage) LoadCampuses(ctx context.Context, universityID int) {
	p.campuses.Load(ctx, func(ctx context.Context) ([]entities.Campus, error) {
		return p.admin.ListCampuses(ctx, universityID)
	})
}

// Campuses returns the loaded campus list.
func (p *AdminPage) Campuses() []entities.Campus {
	return p.campuses.Value()
}

// AddCampus creates a campus and refreshes the campus list.
func (p *AdminPage) AddCampus(ctx context.Context, universityID int, name string) error {
	if _, err := p.admin.CreateCampus(ctx, universityID, name); err != nil {
		return err
	}
	p.LoadCampuses(ctx, universityID)
	return nil
}

// AddBuilding creates a building under a campus.
func (p *AdminPage) AddBuilding(ctx context.Context, universityID, campusID int, name string) error {
	_, err := p.admin.CreateBuilding(ctx, universityID, campusID, name)
	return err
}

// Err surfaces the first load error across the page's resources.
func (p *AdminPage) Err() error {
	for _, err := range []error{p.users.Err(), p.requests.Err(), p.universities.Err(), p.campuses.Err()} {
		if err != nil {
			return err
		}
	}
	return nil
}
