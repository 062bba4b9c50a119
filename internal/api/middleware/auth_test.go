package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusinsider/campus-insider/internal/api/middleware"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

type stubResolver struct {
	sessions map[string]*entities.User
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*entities.User, error) {
	if user, ok := s.sessions[token]; ok {
		return user, nil
	}
	return nil, apperrors.NewUnauthorizedError("invalid or expired session token")
}

func adminProtected(resolver middleware.SessionResolver) (http.Handler, *bool) {
	reached := false
	handler := middleware.RequireAdmin(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &reached
}

func TestRequireAdmin_MissingTokenRejected(t *testing.T) {
	handler, reached := adminProtected(&stubResolver{})

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestRequireAdmin_UnknownTokenRejected(t *testing.T) {
	handler, reached := adminProtected(&stubResolver{})

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer nope")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestRequireAdmin_NonAdminAccountForbidden(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]*entities.User{
		"student-token": {Username: "a@b.com", Role: entities.RoleStudent},
	}}
	handler, reached := adminProtected(resolver)

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer student-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached)
}

func TestRequireAdmin_AdminRoleAloneIsNotEnough(t *testing.T) {
	// The username is the sentinel; a spoofed role claim must not pass.
	resolver := &stubResolver{sessions: map[string]*entities.User{
		"spoofed": {Username: "a@b.com", Role: entities.RoleAdmin},
	}}
	handler, reached := adminProtected(resolver)

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer spoofed")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached)
}

func TestRequireAdmin_AdminPassesThrough(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]*entities.User{
		"admin-token": {Username: "admin", Role: entities.RoleAdmin},
	}}
	handler, reached := adminProtected(resolver)

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}
