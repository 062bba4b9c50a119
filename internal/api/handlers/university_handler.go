package handlers

import (
	"net/http"

	"github.com/campusinsider/campus-insider/internal/application/services"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
)

// UniversityHandler handles university search and detail pages.
type UniversityHandler struct {
	directory *services.DirectoryService
}

// NewUniversityHandler creates a new university handler.
func NewUniversityHandler(directory *services.DirectoryService) *UniversityHandler {
	return &UniversityHandler{directory: directory}
}

// Search handles GET /api/search
func (h *UniversityHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.UniversityFilter{
		Query:      query.Get("q"),
		State:      query.Get("state"),
		CampusType: query.Get("campusType"),
	}

	results, err := h.directory.Search(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
	})
}

// Detail handles GET /api/university
func (h *UniversityHandler) Detail(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	detail, err := h.directory.Detail(r.Context(), query.Get("name"), query.Get("state"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	// university_info stays a single-element array for page compatibility.
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"university_info": []entities.University{detail.University},
		"campuses":        detail.Campuses,
		"locations":       detail.Locations,
	})
}
