package repositories

import (
	"context"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// LocationRequestRepository defines location-request persistence operations.
type LocationRequestRepository interface {
	Create(ctx context.Context, request *entities.LocationRequest) error
	ListPending(ctx context.Context) ([]entities.LocationRequest, error)
}
