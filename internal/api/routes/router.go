package routes

import (
	"net/http"

	"github.com/campusinsider/campus-insider/internal/api/handlers"
	"github.com/campusinsider/campus-insider/internal/api/middleware"
	"github.com/campusinsider/campus-insider/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler       *handlers.AuthHandler
	universityHandler *handlers.UniversityHandler
	locationHandler   *handlers.LocationHandler
	adminHandler      *handlers.AdminHandler

	sessions        middleware.SessionResolver
	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	universityHandler *handlers.UniversityHandler,
	locationHandler *handlers.LocationHandler,
	adminHandler *handlers.AdminHandler,
	sessions middleware.SessionResolver,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		authHandler:       authHandler,
		universityHandler: universityHandler,
		locationHandler:   locationHandler,
		adminHandler:      adminHandler,
		sessions:          sessions,
		cacheMiddleware:   cacheMiddleware,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Account endpoints
	r.mux.HandleFunc("POST /api/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/register", r.authHandler.Register)

	// University directory endpoints
	r.mux.HandleFunc("GET /api/search", r.universityHandler.Search)
	r.mux.HandleFunc("GET /api/university", r.universityHandler.Detail)

	// Location endpoints
	r.mux.HandleFunc("GET /api/locationSearch", r.locationHandler.Search)
	r.mux.HandleFunc("GET /api/locationRatings", r.locationHandler.Ratings)
	r.mux.HandleFunc("POST /api/addReview", r.locationHandler.AddReview)
	r.mux.HandleFunc("POST /api/request-room", r.locationHandler.RequestRoom)
	r.mux.HandleFunc("GET /api/equipmentTags", r.locationHandler.EquipmentTags)
	r.mux.HandleFunc("GET /api/accessibilityTags", r.locationHandler.AccessibilityTags)

	// Admin endpoints sit behind their own token check
	requireAdmin := middleware.RequireAdmin(r.sessions)
	admin := http.NewServeMux()
	admin.HandleFunc("GET /api/admin/users", r.adminHandler.ListUsers)
	admin.HandleFunc("GET /api/admin/requested-rooms", r.adminHandler.ListRequestedRooms)
	admin.HandleFunc("GET /api/admin/universities", r.adminHandler.ListUniversities)
	admin.HandleFunc("POST /api/admin/universities", r.adminHandler.CreateUniversity)
	admin.HandleFunc("GET /api/admin/universities/{id}/campuses", r.adminHandler.ListCampuses)
	admin.HandleFunc("POST /api/admin/universities/{id}/campuses", r.adminHandler.CreateCampus)
	admin.HandleFunc("POST /api/admin/universities/{id}/campuses/{campusId}/buildings", r.adminHandler.CreateBuilding)
	r.mux.Handle("/api/admin/", requireAdmin(admin))

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.Compression(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
