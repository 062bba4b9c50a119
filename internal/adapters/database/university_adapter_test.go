package database_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusinsider/campus-insider/internal/adapters/database"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	"github.com/campusinsider/campus-insider/internal/infrastructure/clients/postgres"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestUniversityAdapter_SearchAppliesFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	adapter := database.NewUniversityAdapter(postgres.NewClientWithDB(db))

	rows := sqlmock.NewRows([]string{"name", "state"}).
		AddRow("Test University", "CA").
		AddRow("Test Tech", "CA")

	mock.ExpectQuery(`SELECT "name", "state" FROM "universities" WHERE .*ILIKE.*ORDER BY "name" ASC LIMIT 25`).
		WillReturnRows(rows)

	results, err := adapter.Search(context.Background(), repositories.UniversityFilter{
		Query: "test",
		State: "CA",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Test University", results[0].University)
	assert.Equal(t, "CA", results[0].State)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniversityAdapter_SearchEmptyResult(t *testing.T) {
	db, mock := setupMockDB(t)
	adapter := database.NewUniversityAdapter(postgres.NewClientWithDB(db))

	mock.ExpectQuery(`SELECT "name", "state" FROM "universities"`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "state"}))

	results, err := adapter.Search(context.Background(), repositories.UniversityFilter{})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniversityAdapter_GetByNameStateNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	adapter := database.NewUniversityAdapter(postgres.NewClientWithDB(db))

	mock.ExpectQuery(`SELECT id, name, state, COALESCE\(wiki_url, ''\)`).
		WithArgs("Ghost U", "NV").
		WillReturnError(sql.ErrNoRows)

	_, err := adapter.GetByNameState(context.Background(), "Ghost U", "NV")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniversityAdapter_CreateFillsGeneratedID(t *testing.T) {
	db, mock := setupMockDB(t)
	adapter := database.NewUniversityAdapter(postgres.NewClientWithDB(db))

	mock.ExpectQuery(`INSERT INTO universities`).
		WithArgs("Test U", "CA", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	university := &entities.University{Name: "Test U", State: "CA"}
	require.NoError(t, adapter.Create(context.Background(), university))
	assert.Equal(t, 12, university.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniversityAdapter_CampusLifecycle(t *testing.T) {
	db, mock := setupMockDB(t)
	adapter := database.NewUniversityAdapter(postgres.NewClientWithDB(db))

	mock.ExpectQuery(`INSERT INTO campuses`).
		WithArgs(3, "North Campus").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	campus := &entities.Campus{UniversityID: 3, Name: "North Campus"}
	require.NoError(t, adapter.CreateCampus(context.Background(), campus))
	assert.Equal(t, 7, campus.ID)

	mock.ExpectQuery(`SELECT id, university_id, name FROM campuses WHERE university_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "university_id", "name"}).
			AddRow(7, 3, "North Campus"))

	campuses, err := adapter.ListCampuses(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, campuses, 1)
	assert.Equal(t, "North Campus", campuses[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
