package repositories

import (
	"context"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// RatingRepository defines rating persistence operations.
type RatingRepository interface {
	Create(ctx context.Context, rating *entities.Rating) error
	ListByLocation(ctx context.Context, locationID int) ([]entities.Rating, error)
}
