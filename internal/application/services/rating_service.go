package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

// ReviewInput carries a review submission. Field ranges match the rating
// axes shown on the ratings page.
type ReviewInput struct {
	Location   string `validate:"required"`
	University string `validate:"required"`
	Username   string `validate:"required"`

	Score            int    `validate:"min=1,max=10"`
	Noise            int    `validate:"min=1,max=5"`
	Cleanliness      int    `validate:"min=1,max=5"`
	EquipmentQuality int    `validate:"min=1,max=3"`
	WifiStrength     int    `validate:"min=1,max=3"`
	Comment          string `validate:"max=2000"`
}

// RatingService validates and stores review submissions. The stored rating
// is stamped with the author's role as recorded on their account, never
// the role claimed by the client.
type RatingService struct {
	locations repositories.LocationRepository
	ratings   repositories.RatingRepository
	users     repositories.UserRepository
	validate  *validator.Validate
}

// NewRatingService creates a new rating service.
func NewRatingService(locations repositories.LocationRepository, ratings repositories.RatingRepository, users repositories.UserRepository) *RatingService {
	return &RatingService{
		locations: locations,
		ratings:   ratings,
		users:     users,
		validate:  validator.New(),
	}
}

// AddReview validates and stores a review.
func (s *RatingService) AddReview(ctx context.Context, input ReviewInput) (*entities.Rating, error) {
	if err := s.validate.Struct(input); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) && len(validateErrs) > 0 {
			field := validateErrs[0]
			if field.Tag() == "required" {
				return nil, apperrors.NewValidationError(fmt.Sprintf("%s is required", field.Field()))
			}
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s is out of range", field.Field()))
		}
		return nil, apperrors.NewValidationError("invalid review")
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("reviews require a registered account")
	}

	location, err := s.locations.FindByName(ctx, input.University, input.Location)
	if err != nil {
		return nil, err
	}

	rating := &entities.Rating{
		LocationID:       location.ID,
		Username:         user.Username,
		Role:             string(user.Role),
		Score:            input.Score,
		Noise:            input.Noise,
		Cleanliness:      input.Cleanliness,
		EquipmentQuality: input.EquipmentQuality,
		WifiStrength:     input.WifiStrength,
		Comment:          input.Comment,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}
