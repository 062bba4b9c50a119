package client

import (
	"context"
	"fmt"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// AdminClient wraps the admin endpoints with the session token the
// backend requires for them.
type AdminClient struct {
	api   *APIClient
	token string
}

// Admin returns a view of the client authorized with the given session token.
func (c *APIClient) Admin(token string) *AdminClient {
	return &AdminClient{api: c, token: token}
}

// ListUsers lists every registered account.
func (a *AdminClient) ListUsers(ctx context.Context) ([]entities.User, error) {
	var result struct {
		Users []entities.User `json:"users"`
	}
	var errBody apiError

	resp, err := a.api.http.R().
		SetContext(ctx).
		SetAuthToken(a.token).
		SetResult(&result).
		SetError(&errBody).
		Get("/api/admin/users")
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return result.Users, nil
}

// ListRequestedRooms lists pending location requests.
func (a *AdminClient) ListRequestedRooms(ctx context.Context) ([]entities.LocationRequest, error) {
	var result struct {
		Requests []entities.LocationRequest `json:"requests"`
	}
	var errBody apiError

	resp, err := a.api.http.R().
		SetContext(ctx).
		SetAuthToken(a.token).
		SetResult(&result).
		SetError(&errBody).
		Get("/api/admin/requested-rooms")
	if err != nil {
		return nil, fmt.Errorf("request listing failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return result.Requests, nil
}

// ListUniversities lists every university in the directory.
func (a *AdminClient) ListUniversities(ctx context.Context) ([]entities.University, error) {
	var result struct {
		Universities []entities.University `json:"universities"`
	}
	var errBody apiError

	resp, err := a.api.http.R().
		SetContext(ctx).
		SetAuthToken(a.token).
		SetResult(&result).
		SetError(&errBody).
		Get("/api/admin/universities")
	if err != nil {
		return nil, fmt.Errorf("university listing failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return result.Universities, nil
}

// CreateUniversity adds a university to the directory.
func (a *AdminClient) CreateUniversity(ctx context.Context, name, state, wikiURL string) (*entities.University, error) {
	var result struct {
		University *entities.University `json:"university"`
	}
	var errBody apiError

	resp, err := a.api.http.R().
		SetContext(ctx).
		SetAuthToken(a.token).
		SetBody(map[string]string{"name": name, "state": state, "wiki_url": wikiURL}).
		SetResult(&result).
		SetError(&errBody).
		Post("/api/admin/universities")
	if err != nil {
		return nil, fmt.Errorf("university creation failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return result.University, nil
}

// ListCampuses lists the campuses of one university.
func (a *AdminClient) ListCampuses(ctx context.Context, universityID int) ([]entities.Campus, error) {
	var result struct {
		Campuses []entities.Campus `json:"campuses"`
	}
	var errBody apiError

	resp, err := a.api.http.R().
		SetContext(ctx).
		SetAuthToken(a.token).
		SetResult(&result).
		SetError(&errBody).
		Get(fmt.Sprintf("/api/admin/universities/%d/campuses", universityID))
	if err != nil {
		return nil, fmt.Errorf("campus listing failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return result.Campuses, nil
}

// CreateCampus adds a campus to a university.
func (a *AdminClient) CreateCampus(ctx context.Context, universityID int, name string) (*entities.Campus, error) {
	var result struct {
		Campus *entities.Campus `json:"campus"`
	}
	var errBody apiError

	resp, err := a.api.http.R().
		SetContext(ctx).
		SetAuthToken(a.token).
		SetBody(map[string]string{"name": name}).
		SetResult(&result).
		SetError(&errBody).
		Post(fmt.Sprintf("/api/admin/universities/%d/campuses", universityID))
	if err != nil {
		return nil, fmt.Errorf("campus creation failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return result.Campus, nil
}

// CreateBuilding adds a building to a campus.
func (a *AdminClient) CreateBuilding(ctx context.Context, universityID, campusID int, name string) (*entities.Building, error) {
	var result struct {
		Building *entities.Building `json:"building"`
	}
	var errBody apiError

	resp, err := a.api.http.R().
		SetContext(ctx).
		SetAuthToken(a.token).
		SetBody(map[string]string{"name": name}).
		SetResult(&result).
		SetError(&errBody).
		Post(fmt.Sprintf("/api/admin/universities/%d/campuses/%d/buildings", universityID, campusID))
	if err != nil {
		return nil, fmt.Errorf("building creation failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return result.Building, nil
}
