package pages

import (
	"context"
	"errors"
	"strings"

	"github.com/campusinsider/campus-insider/internal/client"
	"github.com/campusinsider/campus-insider/internal/client/session"
)

// RequestRoomPage submits proposals for locations missing from the
// directory.
type RequestRoomPage struct {
	api      *client.APIClient
	sessions *session.Holder
}

// NewRequestRoomPage creates the controller.
func NewRequestRoomPage(api *client.APIClient, sessions *session.Holder) *RequestRoomPage {
	return &RequestRoomPage{api: api, sessions: sessions}
}

// RequestForm is the location request form.
type RequestForm struct {
	RoomName     string
	LocationType string
	University   string
	State        string
	CampusName   string
	BuildingName string
	Notes        string
}

// Submit validates the form and files the request.
func (p *RequestRoomPage) Submit(ctx context.Context, form RequestForm) error {
	switch {
	case strings.TrimSpace(form.RoomName) == "":
		return errors.New("location name is required")
	case strings.TrimSpace(form.University) == "":
		return errors.New("university is required")
	case strings.TrimSpace(form.CampusName) == "":
		return errors.New("campus is required")
	}

	username := ""
	if user := p.sessions.CurrentUser(); user != nil {
		username = user.Username
	}

	return p.api.RequestRoom(ctx, client.RoomRequestPayload{
		RoomName:       strings.TrimSpace(form.RoomName),
		LocationType:   form.LocationType,
		UniversityName: strings.TrimSpace(form.University),
		State:          strings.TrimSpace(form.State),
		CampusName:     strings.TrimSpace(form.CampusName),
		BuildingName:   strings.TrimSpace(form.BuildingName),
		Notes:          strings.TrimSpace(form.Notes),
		Username:       username,
	})
}
