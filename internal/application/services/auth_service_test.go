package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusinsider/campus-insider/internal/application/services"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

type memoryUserRepo struct {
	users map[string]*entities.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*entities.User{}}
}

func (r *memoryUserRepo) Create(_ context.Context, user *entities.User) error {
	if _, exists := r.users[user.Username]; exists {
		return apperrors.NewConflictError("username already taken")
	}
	user.ID = len(r.users) + 1
	copied := *user
	r.users[user.Username] = &copied
	return nil
}

func (r *memoryUserRepo) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepo) List(context.Context) ([]entities.User, error) {
	out := make([]entities.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

type stubUniversityRepo struct {
	university *entities.University
}

func (r *stubUniversityRepo) Search(context.Context, repositories.UniversityFilter) ([]entities.UniversityResult, error) {
	return nil, nil
}

func (r *stubUniversityRepo) GetByNameState(context.Context, string, string) (*entities.University, error) {
	if r.university == nil {
		return nil, apperrors.NewNotFoundError("university not found")
	}
	return r.university, nil
}

func (r *stubUniversityRepo) List(context.Context) ([]entities.University, error)      { return nil, nil }
func (r *stubUniversityRepo) Create(context.Context, *entities.University) error       { return nil }
func (r *stubUniversityRepo) ListCampuses(context.Context, int) ([]entities.Campus, error) {
	return nil, nil
}
func (r *stubUniversityRepo) CreateCampus(context.Context, *entities.Campus) error     { return nil }
func (r *stubUniversityRepo) CreateBuilding(context.Context, *entities.Building) error { return nil }

func newAuthService() (*services.AuthService, *memoryUserRepo) {
	users := newMemoryUserRepo()
	universities := &stubUniversityRepo{university: &entities.University{ID: 9, Name: "Test U", State: "CA"}}
	return services.NewAuthService(users, universities, nil), users
}

func TestAuthService_RegisterRejectsReservedUsername(t *testing.T) {
	service, users := newAuthService()

	for _, username := range []string{"admin", "ADMIN", "the-admin-account", "Administrator"} {
		_, err := service.Register(context.Background(), services.RegisterInput{
			Username: username, Password: "pw", University: "Test U", State: "CA",
		})
		assert.Error(t, err, username)
	}
	assert.Empty(t, users.users)
}

func TestAuthService_RegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	service, users := newAuthService()

	user, err := service.Register(context.Background(), services.RegisterInput{
		Username: "a@b.com", Password: "secret", Role: "astronaut", University: "Test U", State: "CA",
	})
	require.NoError(t, err)

	assert.Equal(t, entities.RoleVisitor, user.Role, "unknown roles fall back to visitor")
	assert.Equal(t, 9, user.UniversityID)

	stored := users.users["a@b.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestAuthService_LoginAndResolve(t *testing.T) {
	service, _ := newAuthService()

	_, err := service.Register(context.Background(), services.RegisterInput{
		Username: "a@b.com", Password: "secret", Role: "student", University: "Test U", State: "CA",
	})
	require.NoError(t, err)

	user, token, err := service.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, entities.RoleStudent, user.Role)

	resolved, err := service.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", resolved.Username)
}

func TestAuthService_LoginRejectsWrongPassword(t *testing.T) {
	service, _ := newAuthService()

	_, err := service.Register(context.Background(), services.RegisterInput{
		Username: "a@b.com", Password: "secret", University: "Test U", State: "CA",
	})
	require.NoError(t, err)

	_, _, err = service.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestAuthService_ResolveRejectsUnknownToken(t *testing.T) {
	service, _ := newAuthService()

	_, err := service.Resolve(context.Background(), "not-a-token")
	assert.Error(t, err)

	_, err = service.Resolve(context.Background(), "")
	assert.Error(t, err)
}
