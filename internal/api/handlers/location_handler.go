package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/campusinsider/campus-insider/internal/application/services"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
)

// LocationHandler handles the faceted location search, the ratings page,
// review submission, location requests, and the tag vocabularies.
type LocationHandler struct {
	locations *services.LocationService
	ratings   *services.RatingService
	requests  *services.RequestService
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(locations *services.LocationService, ratings *services.RatingService, requests *services.RequestService) *LocationHandler {
	return &LocationHandler{
		locations: locations,
		ratings:   ratings,
		requests:  requests,
	}
}

// Search handles GET /api/locationSearch
func (h *LocationHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter := parseLocationFilter(r.URL.Query())

	results, err := h.locations.Search(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
	})
}

// parseLocationFilter decodes the location search parameters. The keys
// mirror the client-side query builder exactly.
func parseLocationFilter(query url.Values) repositories.LocationFilter {
	filter := repositories.LocationFilter{
		University: query.Get("university"),
		State:      query.Get("state"),
		Query:      query.Get("q"),
		RoomNumber: query.Get("roomNumber"),
		Building:   query.Get("building"),
		Campus:     query.Get("campus"),
	}

	for _, raw := range splitParam(query.Get("types")) {
		switch strings.ToLower(raw) {
		case "room":
			filter.Types = append(filter.Types, entities.LocationTypeRoom)
		case "building":
			filter.Types = append(filter.Types, entities.LocationTypeBuilding)
		case "nonbuilding":
			filter.Types = append(filter.Types, entities.LocationTypeNonBuilding)
		}
	}
	filter.RoomSizes = splitParam(query.Get("roomSizes"))
	filter.RoomTypes = splitParam(query.Get("roomTypes"))
	filter.Equipment = splitParam(query.Get("equipment"))
	filter.Accessibility = splitParam(query.Get("accessibility"))

	if query.Get("minScore") != "" || query.Get("maxNoise") != "" ||
		query.Get("minCleanliness") != "" || query.Get("minEquipment") != "" ||
		query.Get("minWifi") != "" {
		filter.ByRating = true
		filter.MinScore = atoiOrZero(query.Get("minScore"))
		filter.MaxNoise = atoiOrZero(query.Get("maxNoise"))
		filter.MinCleanliness = atoiOrZero(query.Get("minCleanliness"))
		filter.MinEquipment = atoiOrZero(query.Get("minEquipment"))
		filter.MinWifi = atoiOrZero(query.Get("minWifi"))
	}

	return filter
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// Ratings handles GET /api/locationRatings
func (h *LocationHandler) Ratings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	location, ratings, err := h.locations.Ratings(r.Context(), query.Get("university"), query.Get("location"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"location": location,
		"ratings":  ratings,
	})
}

type addReviewRequest struct {
	Location         string `json:"location"`
	University       string `json:"university"`
	Username         string `json:"username"`
	Score            int    `json:"score"`
	Noise            int    `json:"noise"`
	Cleanliness      int    `json:"cleanliness"`
	EquipmentQuality int    `json:"equipment_quality"`
	WifiStrength     int    `json:"wifi_strength"`
	Comment          string `json:"comment"`
}

// AddReview handles POST /api/addReview
func (h *LocationHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var payload addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	rating, err := h.ratings.AddReview(r.Context(), services.ReviewInput{
		Location:         payload.Location,
		University:       payload.University,
		Username:         payload.Username,
		Score:            payload.Score,
		Noise:            payload.Noise,
		Cleanliness:      payload.Cleanliness,
		EquipmentQuality: payload.EquipmentQuality,
		WifiStrength:     payload.WifiStrength,
		Comment:          payload.Comment,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "review submitted",
		"role":    rating.Role,
	})
}

type requestRoomRequest struct {
	RoomName       string `json:"room_name"`
	LocationType   string `json:"location_type"`
	UniversityName string `json:"university_name"`
	State          string `json:"state"`
	CampusName     string `json:"campus_name"`
	BuildingName   string `json:"building_name"`
	Notes          string `json:"notes"`
	RequestedBy    string `json:"requested_by_username"`
}

// RequestRoom handles POST /api/request-room
func (h *LocationHandler) RequestRoom(w http.ResponseWriter, r *http.Request) {
	var payload requestRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	request := &entities.LocationRequest{
		RoomName:       payload.RoomName,
		LocationType:   payload.LocationType,
		UniversityName: payload.UniversityName,
		State:          payload.State,
		CampusName:     payload.CampusName,
		BuildingName:   payload.BuildingName,
		Notes:          payload.Notes,
		RequestedBy:    payload.RequestedBy,
	}
	if err := h.requests.Submit(r.Context(), request); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "request submitted for review",
	})
}

// EquipmentTags handles GET /api/equipmentTags
func (h *LocationHandler) EquipmentTags(w http.ResponseWriter, r *http.Request) {
	h.tags(w, r, repositories.TagKindEquipment)
}

// AccessibilityTags handles GET /api/accessibilityTags
func (h *LocationHandler) AccessibilityTags(w http.ResponseWriter, r *http.Request) {
	h.tags(w, r, repositories.TagKindAccessibility)
}

func (h *LocationHandler) tags(w http.ResponseWriter, r *http.Request, kind repositories.TagKind) {
	tags, err := h.locations.Tags(r.Context(), kind)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"tags": tags,
	})
}
