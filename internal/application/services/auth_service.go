package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/providers"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

const (
	sessionTTL        = 24 * time.Hour
	sessionKeyPrefix  = "session:token:"
	reservedSubstring = "admin"
)

// AuthService handles registration, login, and session-token resolution.
// Tokens live in Redis when available, with an in-process fallback.
type AuthService struct {
	users        repositories.UserRepository
	universities repositories.UniversityRepository
	cache        providers.CacheProvider
	local        *localTokenStore
}

// NewAuthService creates a new auth service.
func NewAuthService(users repositories.UserRepository, universities repositories.UniversityRepository, cache providers.CacheProvider) *AuthService {
	return &AuthService{
		users:        users,
		universities: universities,
		cache:        cache,
		local:        newLocalTokenStore(),
	}
}

// RegisterInput carries a registration request.
type RegisterInput struct {
	Username   string
	Password   string
	Role       string
	University string
	State      string
}

// Register creates an account. Usernames containing "admin" are reserved.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("username and password are required")
	}
	if strings.Contains(strings.ToLower(username), reservedSubstring) {
		return nil, apperrors.NewValidationError("username cannot contain 'admin'")
	}

	university, err := s.universities.GetByNameState(ctx, input.University, input.State)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user := &entities.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         entities.ParseRole(input.Role),
		UniversityID: university.ID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and mints a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entities.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", apperrors.NewUnauthorizedError("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.NewUnauthorizedError("invalid username or password")
	}

	token := uuid.New().String()
	if err := s.storeToken(ctx, token, user.Username); err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Resolve maps a session token back to its account.
func (s *AuthService) Resolve(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorizedError("missing session token")
	}

	username, ok := s.lookupToken(ctx, token)
	if !ok {
		return nil, apperrors.NewUnauthorizedError("invalid or expired session token")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid or expired session token")
	}
	return user, nil
}

func (s *AuthService) storeToken(ctx context.Context, token, username string) error {
	if s.cache == nil {
		s.local.put(token, username, sessionTTL)
		return nil
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+token, []byte(username), int(sessionTTL.Seconds())); err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to store session for %s", username), err)
	}
	return nil
}

func (s *AuthService) lookupToken(ctx context.Context, token string) (string, bool) {
	if s.cache == nil {
		return s.local.get(token)
	}
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return "", false
	}
	return string(data), true
}

type localTokenStore struct {
	mu     sync.Mutex
	tokens map[string]localToken
}

type localToken struct {
	username  string
	expiresAt time.Time
}

func newLocalTokenStore() *localTokenStore {
	return &localTokenStore{tokens: make(map[string]localToken)}
}

func (s *localTokenStore) put(token, username string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = localToken{username: username, expiresAt: time.Now().Add(ttl)}
}

func (s *localTokenStore) get(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[token]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.tokens, token)
		return "", false
	}
	return entry.username, true
}

// ListUsers returns every registered account, password hashes excluded.
func (s *AuthService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.users.List(ctx)
}
