package services

import (
	"context"
	"strings"
	"time"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

// RequestService handles location-request submission and admin review
// listing.
type RequestService struct {
	requests repositories.LocationRequestRepository
}

// NewRequestService creates a new request service.
func NewRequestService(requests repositories.LocationRequestRepository) *RequestService {
	return &RequestService{requests: requests}
}

// Submit stores a pending location request.
func (s *RequestService) Submit(ctx context.Context, request *entities.LocationRequest) error {
	request.RoomName = strings.TrimSpace(request.RoomName)
	request.CampusName = strings.TrimSpace(request.CampusName)
	request.BuildingName = strings.TrimSpace(request.BuildingName)

	if request.RoomName == "" || request.UniversityName == "" || request.CampusName == "" {
		return apperrors.NewValidationError("location name, university, and campus are required")
	}
	if request.LocationType == string(entities.LocationTypeRoom) && request.BuildingName == "" {
		return apperrors.NewValidationError("rooms require a building name")
	}

	request.Status = entities.RequestStatusPending
	request.CreatedAt = time.Now().UTC()
	return s.requests.Create(ctx, request)
}

// ListPending returns requests awaiting admin review.
func (s *RequestService) ListPending(ctx context.Context) ([]entities.LocationRequest, error) {
	return s.requests.ListPending(ctx)
}
