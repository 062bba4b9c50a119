package services

import (
	"context"
	"strings"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

// UniversityDetail bundles everything the university page shows.
type UniversityDetail struct {
	University entities.University
	Campuses   []entities.Campus
	Locations  []entities.Location
}

// DirectoryService handles university search, detail pages, and the admin
// directory mutations.
type DirectoryService struct {
	universities repositories.UniversityRepository
	locations    repositories.LocationRepository
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(universities repositories.UniversityRepository, locations repositories.LocationRepository) *DirectoryService {
	return &DirectoryService{
		universities: universities,
		locations:    locations,
	}
}

// Search finds universities matching the filter.
func (s *DirectoryService) Search(ctx context.Context, filter repositories.UniversityFilter) ([]entities.UniversityResult, error) {
	return s.universities.Search(ctx, filter)
}

// Detail loads a university with its campuses and locations.
func (s *DirectoryService) Detail(ctx context.Context, name, state string) (*UniversityDetail, error) {
	if name == "" || state == "" {
		return nil, apperrors.NewValidationError("name and state are required")
	}

	university, err := s.universities.GetByNameState(ctx, name, state)
	if err != nil {
		return nil, err
	}

	campuses, err := s.universities.ListCampuses(ctx, university.ID)
	if err != nil {
		return nil, err
	}

	locations, err := s.locations.ListByUniversity(ctx, university.ID)
	if err != nil {
		return nil, err
	}

	return &UniversityDetail{
		University: *university,
		Campuses:   campuses,
		Locations:  locations,
	}, nil
}

// ListUniversities returns all universities.
func (s *DirectoryService) ListUniversities(ctx context.Context) ([]entities.University, error) {
	return s.universities.List(ctx)
}

// ListCampuses returns the campuses of one university.
func (s *DirectoryService) ListCampuses(ctx context.Context, universityID int) ([]entities.Campus, error) {
	return s.universities.ListCampuses(ctx, universityID)
}

// AddUniversity creates a university.
func (s *DirectoryService) AddUniversity(ctx context.Context, name, state, wikiURL string) (*entities.University, error) {
	name = strings.TrimSpace(name)
	state = strings.TrimSpace(state)
	if name == "" || state == "" {
		return nil, apperrors.NewValidationError("university name and state are required")
	}

	university := &entities.University{Name: name, State: state, WikiURL: strings.TrimSpace(wikiURL)}
	if err := s.universities.Create(ctx, university); err != nil {
		return nil, err
	}
	return university, nil
}

// AddCampus creates a campus under a university.
func (s *DirectoryService) AddCampus(ctx context.Context, universityID int, name string) (*entities.Campus, error) {
	name = strings.TrimSpace(name)
	if universityID <= 0 || name == "" {
		return nil, apperrors.NewValidationError("university and campus name are required")
	}

	campus := &entities.Campus{UniversityID: universityID, Name: name}
	if err := s.universities.CreateCampus(ctx, campus); err != nil {
		return nil, err
	}
	return campus, nil
}

// AddBuilding creates a building under a campus.
func (s *DirectoryService) AddBuilding(ctx context.Context, campusID int, name string) (*entities.Building, error) {
	name = strings.TrimSpace(name)
	if campusID <= 0 || name == "" {
		return nil, apperrors.NewValidationError("campus and building name are required")
	}

	building := &entities.Building{CampusID: campusID, Name: name}
	if err := s.universities.CreateBuilding(ctx, building); err != nil {
		return nil, err
	}
	return building, nil
}
