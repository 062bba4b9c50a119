package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	"github.com/campusinsider/campus-insider/internal/infrastructure/clients/postgres"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

const defaultSearchLimit = 25

// UniversityAdapter implements the UniversityRepository interface.
type UniversityAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUniversityAdapter creates a new university adapter.
func NewUniversityAdapter(client *postgres.Client) repositories.UniversityRepository {
	return &UniversityAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Search finds universities matching the filter.
func (a *UniversityAdapter) Search(ctx context.Context, filter repositories.UniversityFilter) ([]entities.UniversityResult, error) {
	ds := a.db.From("universities").
		Select(goqu.C("name"), goqu.C("state")).
		Order(goqu.C("name").Asc())

	if filter.Query != "" {
		ds = ds.Where(goqu.C("name").ILike("%" + filter.Query + "%"))
	}
	if filter.State != "" {
		ds = ds.Where(goqu.C("state").ILike(filter.State))
	}
	if filter.CampusType != "" {
		ds = ds.Where(goqu.L(
			"EXISTS (SELECT 1 FROM campuses c WHERE c.university_id = universities.id AND c.campus_type ILIKE ?)",
			filter.CampusType,
		))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	ds = ds.Limit(uint(limit))

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build university search query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to search universities", err)
	}
	defer rows.Close()

	results := []entities.UniversityResult{}
	for rows.Next() {
		var r entities.UniversityResult
		if err := rows.Scan(&r.University, &r.State); err != nil {
			return nil, apperrors.NewInternalError("failed to scan university row", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read university rows", err)
	}

	return results, nil
}

// GetByNameState retrieves a university by name and state.
func (a *UniversityAdapter) GetByNameState(ctx context.Context, name, state string) (*entities.University, error) {
	query := `
		SELECT id, name, state, COALESCE(wiki_url, '')
		FROM universities
		WHERE name = $1 AND state = $2
	`

	university := &entities.University{}
	err := a.client.DB().QueryRowContext(ctx, query, name, state).Scan(
		&university.ID,
		&university.Name,
		&university.State,
		&university.WikiURL,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("university %q not found", name))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get university", err)
	}

	return university, nil
}

// List returns all universities ordered by name.
func (a *UniversityAdapter) List(ctx context.Context) ([]entities.University, error) {
	query := `SELECT id, name, state, COALESCE(wiki_url, '') FROM universities ORDER BY name`

	rows, err := a.client.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list universities", err)
	}
	defer rows.Close()

	universities := []entities.University{}
	for rows.Next() {
		var u entities.University
		if err := rows.Scan(&u.ID, &u.Name, &u.State, &u.WikiURL); err != nil {
			return nil, apperrors.NewInternalError("failed to scan university row", err)
		}
		universities = append(universities, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read university rows", err)
	}

	return universities, nil
}

// Create inserts a new university and fills in its generated ID.
func (a *UniversityAdapter) Create(ctx context.Context, university *entities.University) error {
	query := `
		INSERT INTO universities (name, state, wiki_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	wiki := sql.NullString{String: university.WikiURL, Valid: university.WikiURL != ""}
	err := a.client.DB().QueryRowContext(ctx, query, university.Name, university.State, wiki).
		Scan(&university.ID)
	if err != nil {
		return apperrors.NewInternalError("failed to create university", err)
	}

	return nil
}

// ListCampuses returns the campuses of a university ordered by name.
func (a *UniversityAdapter) ListCampuses(ctx context.Context, universityID int) ([]entities.Campus, error) {
	query := `SELECT id, university_id, name FROM campuses WHERE university_id = $1 ORDER BY name`

	rows, err := a.client.DB().QueryContext(ctx, query, universityID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list campuses", err)
	}
	defer rows.Close()

	campuses := []entities.Campus{}
	for rows.Next() {
		var c entities.Campus
		if err := rows.Scan(&c.ID, &c.UniversityID, &c.Name); err != nil {
			return nil, apperrors.NewInternalError("failed to scan campus row", err)
		}
		campuses = append(campuses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read campus rows", err)
	}

	return campuses, nil
}

// CreateCampus inserts a new campus and fills in its generated ID.
func (a *UniversityAdapter) CreateCampus(ctx context.Context, campus *entities.Campus) error {
	query := `INSERT INTO campuses (university_id, name) VALUES ($1, $2) RETURNING id`

	err := a.client.DB().QueryRowContext(ctx, query, campus.UniversityID, campus.Name).
		Scan(&campus.ID)
	if err != nil {
		return apperrors.NewInternalError("failed to create campus", err)
	}

	return nil
}

// CreateBuilding inserts a new building and fills in its generated ID.
func (a *UniversityAdapter) CreateBuilding(ctx context.Context, building *entities.Building) error {
	query := `INSERT INTO buildings (campus_id, name) VALUES ($1, $2) RETURNING id`

	err := a.client.DB().QueryRowContext(ctx, query, building.CampusID, building.Name).
		Scan(&building.ID)
	if err != nil {
		return apperrors.NewInternalError("failed to create building", err)
	}

	return nil
}
