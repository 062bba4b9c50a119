package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusinsider/campus-insider/internal/api/handlers"
	"github.com/campusinsider/campus-insider/internal/application/services"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

type stubLocationRepo struct {
	lastFilter repositories.LocationFilter
	results    []entities.Location
	found      *entities.Location
}

func (s *stubLocationRepo) Search(_ context.Context, filter repositories.LocationFilter) ([]entities.Location, error) {
	s.lastFilter = filter
	return s.results, nil
}

func (s *stubLocationRepo) ListByUniversity(context.Context, int) ([]entities.Location, error) {
	return s.results, nil
}

func (s *stubLocationRepo) FindByName(context.Context, string, string) (*entities.Location, error) {
	if s.found == nil {
		return nil, apperrors.NewNotFoundError("location not found")
	}
	return s.found, nil
}

type stubRatingRepo struct {
	created []*entities.Rating
	listed  []entities.Rating
}

func (s *stubRatingRepo) Create(_ context.Context, rating *entities.Rating) error {
	rating.ID = len(s.created) + 1
	s.created = append(s.created, rating)
	return nil
}

func (s *stubRatingRepo) ListByLocation(context.Context, int) ([]entities.Rating, error) {
	return s.listed, nil
}

type stubTagRepo struct {
	tags map[repositories.TagKind][]string
}

func (s *stubTagRepo) List(_ context.Context, kind repositories.TagKind) ([]string, error) {
	return s.tags[kind], nil
}

type stubUserRepo struct {
	users map[string]*entities.User
}

func (s *stubUserRepo) Create(context.Context, *entities.User) error { return nil }

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	if user, ok := s.users[username]; ok {
		return user, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (s *stubUserRepo) List(context.Context) ([]entities.User, error) { return nil, nil }

type stubRequestRepo struct {
	created []*entities.LocationRequest
}

func (s *stubRequestRepo) Create(_ context.Context, request *entities.LocationRequest) error {
	s.created = append(s.created, request)
	return nil
}

func (s *stubRequestRepo) ListPending(context.Context) ([]entities.LocationRequest, error) {
	return nil, nil
}

func newLocationHandler(locRepo *stubLocationRepo, ratingRepo *stubRatingRepo, userRepo *stubUserRepo, requestRepo *stubRequestRepo) *handlers.LocationHandler {
	tagRepo := &stubTagRepo{tags: map[repositories.TagKind][]string{
		repositories.TagKindEquipment:     {"projector", "whiteboard"},
		repositories.TagKindAccessibility: {"ramp"},
	}}
	locationService := services.NewLocationService(locRepo, ratingRepo, tagRepo)
	ratingService := services.NewRatingService(locRepo, ratingRepo, userRepo)
	requestService := services.NewRequestService(requestRepo)
	return handlers.NewLocationHandler(locationService, ratingService, requestService)
}

func TestLocationHandler_SearchParsesFacets(t *testing.T) {
	locRepo := &stubLocationRepo{results: []entities.Location{{Name: "Library 101"}}}
	handler := newLocationHandler(locRepo, &stubRatingRepo{}, &stubUserRepo{}, &stubRequestRepo{})

	params := url.Values{}
	params.Set("university", "Test U")
	params.Set("types", "room")
	params.Set("roomSizes", "small")
	req := httptest.NewRequest("GET", "/api/locationSearch?"+params.Encode(), nil)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	filter := locRepo.lastFilter
	assert.Equal(t, "Test U", filter.University)
	assert.Equal(t, []entities.LocationType{entities.LocationTypeRoom}, filter.Types)
	assert.Equal(t, []string{"small"}, filter.RoomSizes)
	assert.Empty(t, filter.RoomTypes)
	assert.Empty(t, filter.RoomNumber)
	assert.False(t, filter.ByRating)

	var response struct {
		Results []entities.Location `json:"results"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Len(t, response.Results, 1)
	assert.Equal(t, "Library 101", response.Results[0].Name)
}

func TestLocationHandler_SearchThresholdsEnableRatingFilter(t *testing.T) {
	locRepo := &stubLocationRepo{}
	handler := newLocationHandler(locRepo, &stubRatingRepo{}, &stubUserRepo{}, &stubRequestRepo{})

	req := httptest.NewRequest("GET", "/api/locationSearch?university=Test+U&minScore=7&maxNoise=2", nil)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, locRepo.lastFilter.ByRating)
	assert.Equal(t, 7, locRepo.lastFilter.MinScore)
	assert.Equal(t, 2, locRepo.lastFilter.MaxNoise)
}

func TestLocationHandler_SearchRequiresUniversity(t *testing.T) {
	handler := newLocationHandler(&stubLocationRepo{}, &stubRatingRepo{}, &stubUserRepo{}, &stubRequestRepo{})

	req := httptest.NewRequest("GET", "/api/locationSearch?q=library", nil)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationHandler_AddReviewStampsStoredRole(t *testing.T) {
	locRepo := &stubLocationRepo{found: &entities.Location{ID: 3, Name: "Library 101"}}
	ratingRepo := &stubRatingRepo{}
	userRepo := &stubUserRepo{users: map[string]*entities.User{
		"a@b.com": {Username: "a@b.com", Role: entities.RoleStudent},
	}}
	handler := newLocationHandler(locRepo, ratingRepo, userRepo, &stubRequestRepo{})

	body := `{"location":"Library 101","university":"Test U","username":"a@b.com","score":8,"noise":2,"cleanliness":4,"equipment_quality":3,"wifi_strength":2}`
	req := httptest.NewRequest("POST", "/api/addReview", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.AddReview(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, ratingRepo.created, 1)
	assert.Equal(t, "student", ratingRepo.created[0].Role)
	assert.Equal(t, 3, ratingRepo.created[0].LocationID)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "student", response["role"])
}

func TestLocationHandler_AddReviewRejectsOutOfRangeScore(t *testing.T) {
	ratingRepo := &stubRatingRepo{}
	handler := newLocationHandler(&stubLocationRepo{}, ratingRepo, &stubUserRepo{}, &stubRequestRepo{})

	body := `{"location":"Library 101","university":"Test U","username":"a@b.com","score":11,"noise":2,"cleanliness":4,"equipment_quality":3,"wifi_strength":2}`
	req := httptest.NewRequest("POST", "/api/addReview", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.AddReview(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, ratingRepo.created)
}

func TestLocationHandler_RequestRoomValidation(t *testing.T) {
	requestRepo := &stubRequestRepo{}
	handler := newLocationHandler(&stubLocationRepo{}, &stubRatingRepo{}, &stubUserRepo{}, requestRepo)

	body := `{"room_name":"Annex 2","location_type":"building","university_name":"Test U","state":"CA","campus_name":"Main"}`
	req := httptest.NewRequest("POST", "/api/request-room", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.RequestRoom(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, requestRepo.created, 1)
	assert.Equal(t, entities.RequestStatusPending, requestRepo.created[0].Status)

	// A room proposal without a building is rejected.
	body = `{"room_name":"Room 5","location_type":"room","university_name":"Test U","campus_name":"Main"}`
	req = httptest.NewRequest("POST", "/api/request-room", strings.NewReader(body))
	w = httptest.NewRecorder()

	handler.RequestRoom(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationHandler_TagEndpoints(t *testing.T) {
	handler := newLocationHandler(&stubLocationRepo{}, &stubRatingRepo{}, &stubUserRepo{}, &stubRequestRepo{})

	req := httptest.NewRequest("GET", "/api/equipmentTags", nil)
	w := httptest.NewRecorder()
	handler.EquipmentTags(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Tags []string `json:"tags"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, []string{"projector", "whiteboard"}, response.Tags)
}
