// Package client implements the browser-side core of Campus Insider as a
// reusable Go library: an API client, session storage, the table and tag
// selector widgets, and the page controllers that compose them.
package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// APIClient talks to the Campus Insider backend over HTTP/JSON.
type APIClient struct {
	http *resty.Client
}

// NewAPIClient creates a client for the given base URL. Requests are
// cut off after timeout so a hung backend cannot leave a page loading
// forever.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &APIClient{http: httpClient}
}

// apiError is the structured error body returned by the backend.
type apiError struct {
	Error string `json:"error"`
}

// RequestError is a non-success response from the backend, carrying the
// server-provided message when one was present.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func checkResponse(resp *resty.Response, errBody *apiError) error {
	if resp.IsSuccess() {
		return nil
	}
	message := ""
	if errBody != nil {
		message = errBody.Error
	}
	return &RequestError{StatusCode: resp.StatusCode(), Message: message}
}

// LoginResult is the session record returned by a successful login.
type LoginResult struct {
	UniversityID int    `json:"university_id"`
	Role         string `json:"role"`
	Token        string `json:"token"`
}

// Login authenticates and returns the session record.
func (c *APIClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&result).
		SetError(&errBody).
		Post("/api/login")
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterPayload is the account creation form.
type RegisterPayload struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	University string `json:"university"`
	State      string `json:"state"`
}

// Register creates an account.
func (c *APIClient) Register(ctx context.Context, payload RegisterPayload) error {
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(&errBody).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}
	return checkResponse(resp, &errBody)
}

// SearchUniversities runs the university search.
func (c *APIClient) SearchUniversities(ctx context.Context, query, state, campusType string) ([]entities.UniversityResult, error) {
	var result struct {
		Results []entities.UniversityResult `json:"results"`
	}
	var errBody apiError

	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if state != "" {
		params.Set("state", state)
	}
	if campusType != "" {
		params.Set("campusType", campusType)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&result).
		SetError(&errBody).
		Get("/api/search")
	if err != nil {
		return nil, fmt.Errorf("university search failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// UniversityDetail is the detail page payload.
type UniversityDetail struct {
	UniversityInfo []entities.University `json:"university_info"`
	Campuses       []entities.Campus     `json:"campuses"`
	Locations      []entities.Location   `json:"locations"`
}

// GetUniversity fetches the detail view for one university.
func (c *APIClient) GetUniversity(ctx context.Context, name, state string) (*UniversityDetail, error) {
	var result UniversityDetail
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("name", name).
		SetQueryParam("state", state).
		SetResult(&result).
		SetError(&errBody).
		Get("/api/university")
	if err != nil {
		return nil, fmt.Errorf("university detail failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchLocations runs the faceted location search with pre-serialized
// query parameters.
func (c *APIClient) SearchLocations(ctx context.Context, params url.Values) ([]entities.Location, error) {
	var result struct {
		Results []entities.Location `json:"results"`
	}
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&result).
		SetError(&errBody).
		Get("/api/locationSearch")
	if err != nil {
		return nil, fmt.Errorf("location search failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// LocationRatings is the ratings page payload.
type LocationRatings struct {
	Location *entities.Location `json:"location"`
	Ratings  []entities.Rating  `json:"ratings"`
}

// GetLocationRatings fetches a location and its ratings.
func (c *APIClient) GetLocationRatings(ctx context.Context, university, location string) (*LocationRatings, error) {
	var result LocationRatings
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("university", university).
		SetQueryParam("location", location).
		SetResult(&result).
		SetError(&errBody).
		Get("/api/locationRatings")
	if err != nil {
		return nil, fmt.Errorf("location ratings failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReviewPayload is the rating submission body.
type ReviewPayload struct {
	Location         string `json:"location"`
	University       string `json:"university"`
	Username         string `json:"username"`
	Score            int    `json:"score"`
	Noise            int    `json:"noise"`
	Cleanliness      int    `json:"cleanliness"`
	EquipmentQuality int    `json:"equipment_quality"`
	WifiStrength     int    `json:"wifi_strength"`
	Comment          string `json:"comment"`
}

// AddReview submits a rating.
func (c *APIClient) AddReview(ctx context.Context, payload ReviewPayload) error {
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(&errBody).
		Post("/api/addReview")
	if err != nil {
		return fmt.Errorf("review submission failed: %w", err)
	}
	return checkResponse(resp, &errBody)
}

// RoomRequestPayload is the location request form.
type RoomRequestPayload struct {
	RoomName       string `json:"room_name"`
	LocationType   string `json:"location_type"`
	UniversityName string `json:"university_name"`
	State          string `json:"state"`
	CampusName     string `json:"campus_name"`
	BuildingName   string `json:"building_name"`
	Notes          string `json:"notes"`
	Username       string `json:"requested_by_username"`
}

// RequestRoom submits a proposal for a location not yet in the directory.
func (c *APIClient) RequestRoom(ctx context.Context, payload RoomRequestPayload) error {
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(&errBody).
		Post("/api/request-room")
	if err != nil {
		return fmt.Errorf("room request failed: %w", err)
	}
	return checkResponse(resp, &errBody)
}

// FetchTags retrieves a tag vocabulary. The endpoint is one of
// "/api/equipmentTags" or "/api/accessibilityTags".
func (c *APIClient) FetchTags(ctx context.Context, endpoint string) ([]string, error) {
	var result struct {
		Tags []string `json:"tags"`
	}
	var errBody apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&errBody).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("tag fetch failed: %w", err)
	}
	if err := checkResponse(resp, &errBody); err != nil {
		return nil, err
	}
	return result.Tags, nil
}
