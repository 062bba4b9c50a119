package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	"github.com/campusinsider/campus-insider/internal/infrastructure/clients/postgres"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

// LocationRequestAdapter implements location-request persistence in Postgres.
type LocationRequestAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewLocationRequestAdapter creates a new location request adapter.
func NewLocationRequestAdapter(client *postgres.Client) repositories.LocationRequestRepository {
	return &LocationRequestAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a location request.
func (a *LocationRequestAdapter) Create(ctx context.Context, request *entities.LocationRequest) error {
	record := goqu.Record{
		"room_name":             request.RoomName,
		"location_type":         request.LocationType,
		"university_name":       request.UniversityName,
		"state":                 request.State,
		"campus_name":           request.CampusName,
		"building_name":         sql.NullString{String: request.BuildingName, Valid: request.BuildingName != ""},
		"notes":                 sql.NullString{String: request.Notes, Valid: request.Notes != ""},
		"requested_by_username": request.RequestedBy,
		"status":                request.Status,
		"created_at":            request.CreatedAt,
	}

	query, args, err := a.db.Insert("location_requests").Rows(record).Returning("id").ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build location request insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&request.ID); err != nil {
		return apperrors.NewInternalError("failed to create location request", err)
	}

	return nil
}

// ListPending returns pending requests, oldest first.
func (a *LocationRequestAdapter) ListPending(ctx context.Context) ([]entities.LocationRequest, error) {
	query := `
		SELECT id, room_name, location_type, university_name, state, campus_name,
			COALESCE(building_name, ''), COALESCE(notes, ''), requested_by_username, status, created_at
		FROM location_requests
		WHERE status = $1
		ORDER BY created_at
	`

	rows, err := a.client.DB().QueryContext(ctx, query, entities.RequestStatusPending)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list location requests", err)
	}
	defer rows.Close()

	requests := []entities.LocationRequest{}
	for rows.Next() {
		var r entities.LocationRequest
		err := rows.Scan(
			&r.ID,
			&r.RoomName,
			&r.LocationType,
			&r.UniversityName,
			&r.State,
			&r.CampusName,
			&r.BuildingName,
			&r.Notes,
			&r.RequestedBy,
			&r.Status,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan location request row", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read location request rows", err)
	}

	return requests, nil
}
