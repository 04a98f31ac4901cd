package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
	httpHandler "github.com/piresc/locations/services/locations/handler/http"
)

// Handler combines all handlers for the locations service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHandler creates a new combined handler
func NewHandler(locationUC locations.LocationUC, cfg *models.Config) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC, cfg),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public search routes
	e.GET("/locations", h.locationHTTP.SearchLocations)
	e.GET("/locations/states", h.locationHTTP.StateChoices)
	e.GET("/locations/:id", h.locationHTTP.GetLocation)

	e.GET("/categories", h.locationHTTP.ListCategories)

	// Admin routes, expected to sit behind the internal ingress
	admin := e.Group("/admin")
	admin.POST("/categories", h.locationHTTP.CreateCategory)

	adminLocations := admin.Group("/locations")
	adminLocations.POST("/upload", h.locationHTTP.UploadLocations)
	adminLocations.POST("/geocode", h.locationHTTP.GeocodeLocations)
	adminLocations.POST("/toggle-active", h.locationHTTP.ToggleActive)
}
