package repositories

import (
	"context"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// UniversityFilter narrows a university search.
type UniversityFilter struct {
	Query      string
	State      string
	CampusType string
	Limit      int
}

// UniversityRepository defines directory operations over universities,
// campuses, and buildings.
type UniversityRepository interface {
	Search(ctx context.Context, filter UniversityFilter) ([]entities.UniversityResult, error)
	GetByNameState(ctx context.Context, name, state string) (*entities.University, error)
	List(ctx context.Context) ([]entities.University, error)
	Create(ctx context.Context, university *entities.University) error
	ListCampuses(ctx context.Context, universityID int) ([]entities.Campus, error)
	CreateCampus(ctx context.Context, campus *entities.Campus) error
	CreateBuilding(ctx context.Context, building *entities.Building) error
}
