package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/campusinsider/campus-insider/internal/application/services"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// AdminHandler handles the admin directory management endpoints. Access
// control lives in the admin middleware, not here.
type AdminHandler struct {
	directory *services.DirectoryService
	requests  *services.RequestService
	users     UserLister
}

// UserLister defines the account listing used by the admin page.
type UserLister interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(directory *services.DirectoryService, requests *services.RequestService, users UserLister) *AdminHandler {
	return &AdminHandler{
		directory: directory,
		requests:  requests,
		users:     users,
	}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
	})
}

// ListRequestedRooms handles GET /api/admin/requested-rooms
func (h *AdminHandler) ListRequestedRooms(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requests.ListPending(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
	})
}

// ListUniversities handles GET /api/admin/universities
func (h *AdminHandler) ListUniversities(w http.ResponseWriter, r *http.Request) {
	universities, err := h.directory.ListUniversities(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"universities": universities,
	})
}

type createUniversityRequest struct {
	Name    string `json:"name"`
	State   string `json:"state"`
	WikiURL string `json:"wiki_url"`
}

// CreateUniversity handles POST /api/admin/universities
func (h *AdminHandler) CreateUniversity(w http.ResponseWriter, r *http.Request) {
	var payload createUniversityRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	university, err := h.directory.AddUniversity(r.Context(), payload.Name, payload.State, payload.WikiURL)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"university": university,
	})
}

// ListCampuses handles GET /api/admin/universities/{id}/campuses
func (h *AdminHandler) ListCampuses(w http.ResponseWriter, r *http.Request) {
	universityID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	campuses, err := h.directory.ListCampuses(r.Context(), universityID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"campuses": campuses,
	})
}

type createNamedRequest struct {
	Name string `json:"name"`
}

// CreateCampus handles POST /api/admin/universities/{id}/campuses
func (h *AdminHandler) CreateCampus(w http.ResponseWriter, r *http.Request) {
	universityID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var payload createNamedRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	campus, err := h.directory.AddCampus(r.Context(), universityID, payload.Name)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"campus": campus,
	})
}

// CreateBuilding handles POST /api/admin/universities/{id}/campuses/{campusId}/buildings
func (h *AdminHandler) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(w, r, "id"); !ok {
		return
	}
	campusID, ok := pathID(w, r, "campusId")
	if !ok {
		return
	}

	var payload createNamedRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	building, err := h.directory.AddBuilding(r.Context(), campusID, payload.Name)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"building": building,
	})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		respondWithError(w, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
