package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	"github.com/campusinsider/campus-insider/internal/infrastructure/clients/postgres"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

const locationSearchLimit = 100

// LocationAdapter implements the LocationRepository interface. The faceted
// search composes its WHERE clause dynamically, so it is built with goqu
// rather than hand-assembled SQL.
type LocationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewLocationAdapter creates a new location adapter.
func NewLocationAdapter(client *postgres.Client) repositories.LocationRepository {
	return &LocationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func (a *LocationAdapter) baseSelect() *goqu.SelectDataset {
	return a.db.From(goqu.T("locations").As("l")).
		Join(goqu.T("campuses").As("c"), goqu.On(goqu.I("l.campus_id").Eq(goqu.I("c.id")))).
		Join(goqu.T("universities").As("u"), goqu.On(goqu.I("c.university_id").Eq(goqu.I("u.id")))).
		LeftJoin(goqu.T("buildings").As("b"), goqu.On(goqu.I("l.building_id").Eq(goqu.I("b.id")))).
		Select(
			goqu.I("l.id"),
			goqu.I("l.display_name"),
			goqu.I("l.name"),
			goqu.I("l.location_type"),
			goqu.I("c.name").As("campus_name"),
			goqu.COALESCE(goqu.I("b.name"), "").As("building_name"),
			goqu.COALESCE(goqu.I("l.room_number"), "").As("room_number"),
			goqu.COALESCE(goqu.I("l.room_size"), "").As("room_size"),
			goqu.COALESCE(goqu.I("l.room_type"), "").As("room_type"),
		)
}

// Search runs the faceted location search.
func (a *LocationAdapter) Search(ctx context.Context, filter repositories.LocationFilter) ([]entities.Location, error) {
	ds := a.baseSelect().
		Where(goqu.I("u.name").Eq(filter.University)).
		Order(goqu.I("l.display_name").Asc())

	if filter.State != "" {
		ds = ds.Where(goqu.I("u.state").Eq(filter.State))
	}
	if filter.Query != "" {
		ds = ds.Where(goqu.I("l.display_name").ILike("%" + filter.Query + "%"))
	}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		ds = ds.Where(goqu.I("l.location_type").In(types))
	}
	if len(filter.RoomSizes) > 0 {
		ds = ds.Where(goqu.I("l.room_size").In(filter.RoomSizes))
	}
	if len(filter.RoomTypes) > 0 {
		ds = ds.Where(goqu.I("l.room_type").In(filter.RoomTypes))
	}
	if filter.RoomNumber != "" {
		ds = ds.Where(goqu.I("l.room_number").Eq(filter.RoomNumber))
	}
	if filter.Building != "" {
		ds = ds.Where(goqu.I("b.name").ILike("%" + filter.Building + "%"))
	}
	if filter.Campus != "" {
		ds = ds.Where(goqu.I("c.name").ILike("%" + filter.Campus + "%"))
	}

	for _, tag := range filter.Equipment {
		ds = ds.Where(goqu.L(
			"EXISTS (SELECT 1 FROM location_tags t WHERE t.location_id = l.id AND t.kind = 'equipment' AND t.tag = ?)",
			tag,
		))
	}
	for _, tag := range filter.Accessibility {
		ds = ds.Where(goqu.L(
			"EXISTS (SELECT 1 FROM location_tags t WHERE t.location_id = l.id AND t.kind = 'accessibility' AND t.tag = ?)",
			tag,
		))
	}

	if filter.ByRating {
		if having := ratingHaving(filter); len(having) > 0 {
			sub := a.db.From("ratings").
				Select(goqu.C("location_id")).
				GroupBy(goqu.C("location_id")).
				Having(having...)
			ds = ds.Where(goqu.I("l.id").In(sub))
		}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = locationSearchLimit
	}
	ds = ds.Limit(uint(limit))

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build location search query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to search locations", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

func ratingHaving(filter repositories.LocationFilter) []exp.Expression {
	var having []exp.Expression
	if filter.MinScore > 0 {
		having = append(having, goqu.AVG("score").Gte(filter.MinScore))
	}
	if filter.MaxNoise > 0 {
		having = append(having, goqu.AVG("noise").Lte(filter.MaxNoise))
	}
	if filter.MinCleanliness > 0 {
		having = append(having, goqu.AVG("cleanliness").Gte(filter.MinCleanliness))
	}
	if filter.MinEquipment > 0 {
		having = append(having, goqu.AVG("equipment_quality").Gte(filter.MinEquipment))
	}
	if filter.MinWifi > 0 {
		having = append(having, goqu.AVG("wifi_strength").Gte(filter.MinWifi))
	}
	return having
}

// ListByUniversity returns every location of a university ordered by
// display name.
func (a *LocationAdapter) ListByUniversity(ctx context.Context, universityID int) ([]entities.Location, error) {
	ds := a.baseSelect().
		Where(goqu.I("u.id").Eq(universityID)).
		Order(goqu.I("l.display_name").Asc())

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build location list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list locations", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

// FindByName resolves a location within a university, preferring the
// canonical name over the display name when both match.
func (a *LocationAdapter) FindByName(ctx context.Context, university, name string) (*entities.Location, error) {
	ds := a.baseSelect().
		Where(
			goqu.I("u.name").Eq(university),
			goqu.Or(
				goqu.I("l.name").Eq(name),
				goqu.I("l.display_name").Eq(name),
			),
		).
		Order(goqu.L("(l.name = ?)", name).Desc()).
		Limit(1)

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build location lookup query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to look up location", err)
	}
	defer rows.Close()

	locations, err := scanLocations(rows)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("location %q not found", name))
	}

	return &locations[0], nil
}

func scanLocations(rows *sql.Rows) ([]entities.Location, error) {
	locations := []entities.Location{}
	for rows.Next() {
		var loc entities.Location
		err := rows.Scan(
			&loc.ID,
			&loc.Name,
			&loc.DBName,
			&loc.Type,
			&loc.CampusName,
			&loc.BuildingName,
			&loc.RoomNumber,
			&loc.RoomSize,
			&loc.RoomType,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan location row", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read location rows", err)
	}
	return locations, nil
}
