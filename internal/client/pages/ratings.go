package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campusinsider/campus-insider/internal/client"
	"github.com/campusinsider/campus-insider/internal/client/session"
)

// RatingsPage shows a location's ratings and accepts new reviews.
type RatingsPage struct {
	api      *client.APIClient
	sessions *session.Holder

	detail Resource[*client.LocationRatings]

	university string
	location   string
}

// NewRatingsPage creates the controller.
func NewRatingsPage(api *client.APIClient, sessions *session.Holder) *RatingsPage {
	return &RatingsPage{api: api, sessions: sessions}
}

// Load fetches the location and its ratings.
func (p *RatingsPage) Load(ctx context.Context, university, location string) {
	p.university = university
	p.location = location
	p.detail.Load(ctx, func(ctx context.Context) (*client.LocationRatings, error) {
		return p.api.GetLocationRatings(ctx, university, location)
	})
}

// Detail returns the loaded location and ratings, or nil before a
// successful load.
func (p *RatingsPage) Detail() *client.LocationRatings {
	return p.detail.Value()
}

// ReviewForm is the rating submission form.
type ReviewForm struct {
	Score            int
	Noise            int
	Cleanliness      int
	EquipmentQuality int
	WifiStrength     int
	Comment          string
}

// SubmitReview validates the form ranges and submits the rating as the
// signed-in user. An anonymous session is rejected before any request.
func (p *RatingsPage) SubmitReview(ctx context.Context, form ReviewForm) error {
	user := p.sessions.CurrentUser()
	if user == nil {
		return errors.New("sign in to submit a review")
	}

	if err := validateRange("score", form.Score, 1, 10); err != nil {
		return err
	}
	if err := validateRange("noise", form.Noise, 1, 5); err != nil {
		return err
	}
	if err := validateRange("cleanliness", form.Cleanliness, 1, 5); err != nil {
		return err
	}
	if err := validateRange("equipment quality", form.EquipmentQuality, 1, 3); err != nil {
		return err
	}
	if err := validateRange("wifi strength", form.WifiStrength, 1, 3); err != nil {
		return err
	}

	err := p.api.AddReview(ctx, client.ReviewPayload{
		Location:         p.location,
		University:       p.university,
		Username:         user.Username,
		Score:            form.Score,
		Noise:            form.Noise,
		Cleanliness:      form.Cleanliness,
		EquipmentQuality: form.EquipmentQuality,
		WifiStrength:     form.WifiStrength,
		Comment:          strings.TrimSpace(form.Comment),
	})
	if err != nil {
		return err
	}

	// Show the new review without waiting for a manual refresh.
	p.Load(ctx, p.university, p.location)
	return nil
}

// State reports the fetch lifecycle for the view.
func (p *RatingsPage) State() State {
	return p.detail.State()
}

// Err returns the last fetch error for the inline message.
func (p *RatingsPage) Err() error {
	return p.detail.Err()
}

func validateRange(field string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d", field, min, max)
	}
	return nil
}
