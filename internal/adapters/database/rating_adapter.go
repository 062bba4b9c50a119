package database

import (
	"context"
	"database/sql"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	"github.com/campusinsider/campus-insider/internal/infrastructure/clients/postgres"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

// RatingAdapter implements the RatingRepository interface.
type RatingAdapter struct {
	client *postgres.Client
}

// NewRatingAdapter creates a new rating adapter.
func NewRatingAdapter(client *postgres.Client) repositories.RatingRepository {
	return &RatingAdapter{client: client}
}

// Create inserts a rating and fills in its generated ID.
func (a *RatingAdapter) Create(ctx context.Context, rating *entities.Rating) error {
	query := `
		INSERT INTO ratings (
			location_id, username, role, score, noise,
			cleanliness, equipment_quality, wifi_strength, comment, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	comment := sql.NullString{String: rating.Comment, Valid: rating.Comment != ""}
	err := a.client.DB().QueryRowContext(ctx, query,
		rating.LocationID,
		rating.Username,
		rating.Role,
		rating.Score,
		rating.Noise,
		rating.Cleanliness,
		rating.EquipmentQuality,
		rating.WifiStrength,
		comment,
		rating.CreatedAt,
	).Scan(&rating.ID)

	if err != nil {
		return apperrors.NewInternalError("failed to create rating", err)
	}

	return nil
}

// ListByLocation returns a location's ratings, newest first.
func (a *RatingAdapter) ListByLocation(ctx context.Context, locationID int) ([]entities.Rating, error) {
	query := `
		SELECT id, location_id, username, role, score, noise,
			cleanliness, equipment_quality, wifi_strength, COALESCE(comment, ''), created_at
		FROM ratings
		WHERE location_id = $1
		ORDER BY created_at DESC
	`

	rows, err := a.client.DB().QueryContext(ctx, query, locationID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list ratings", err)
	}
	defer rows.Close()

	ratings := []entities.Rating{}
	for rows.Next() {
		var r entities.Rating
		err := rows.Scan(
			&r.ID,
			&r.LocationID,
			&r.Username,
			&r.Role,
			&r.Score,
			&r.Noise,
			&r.Cleanliness,
			&r.EquipmentQuality,
			&r.WifiStrength,
			&r.Comment,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan rating row", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read rating rows", err)
	}

	return ratings, nil
}
