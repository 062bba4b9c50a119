package services

import (
	"context"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

// LocationService handles the faceted location search, the ratings page
// lookup, and the tag vocabularies.
type LocationService struct {
	locations repositories.LocationRepository
	ratings   repositories.RatingRepository
	tags      repositories.TagRepository
}

// NewLocationService creates a new location service.
func NewLocationService(locations repositories.LocationRepository, ratings repositories.RatingRepository, tags repositories.TagRepository) *LocationService {
	return &LocationService{
		locations: locations,
		ratings:   ratings,
		tags:      tags,
	}
}

// Search runs the faceted location search within one university.
func (s *LocationService) Search(ctx context.Context, filter repositories.LocationFilter) ([]entities.Location, error) {
	if filter.University == "" {
		return nil, apperrors.NewValidationError("university is required")
	}
	return s.locations.Search(ctx, filter)
}

// Ratings resolves a location within a university and returns it with its
// ratings, newest first.
func (s *LocationService) Ratings(ctx context.Context, university, location string) (*entities.Location, []entities.Rating, error) {
	if university == "" || location == "" {
		return nil, nil, apperrors.NewValidationError("location and university are required")
	}

	loc, err := s.locations.FindByName(ctx, university, location)
	if err != nil {
		return nil, nil, err
	}

	ratings, err := s.ratings.ListByLocation(ctx, loc.ID)
	if err != nil {
		return nil, nil, err
	}

	return loc, ratings, nil
}

// Tags returns one of the tag vocabularies.
func (s *LocationService) Tags(ctx context.Context, kind repositories.TagKind) ([]string, error) {
	return s.tags.List(ctx, kind)
}
