package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/internal/utils"
	"github.com/piresc/locations/services/locations"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC locations.LocationUC
	cfg        *models.Config
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC locations.LocationUC, cfg *models.Config) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		cfg:        cfg,
	}
}

// SearchLocations answers the proximity search
func (h *LocationHandler) SearchLocations(c echo.Context) error {
	query, err := parseSearchQuery(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	results, err := h.locationUC.SearchLocations(c.Request().Context(), query)
	if err != nil {
		return respondError(c, "Failed to search locations", err)
	}

	if results == nil {
		results = []*models.LocationResult{}
	}
	return c.JSON(http.StatusOK, results)
}

// GetLocation returns a single active location
func (h *LocationHandler) GetLocation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return utils.BadRequestResponse(c, "invalid location id")
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Failed to get location", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved", location)
}

// StateChoices lists states with active locations
func (h *LocationHandler) StateChoices(c echo.Context) error {
	states, err := h.locationUC.StateChoices(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to list states", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "States retrieved", states)
}

// ListCategories lists every location category
func (h *LocationHandler) ListCategories(c echo.Context) error {
	categories, err := h.locationUC.ListCategories(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to list categories", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Categories retrieved", categories)
}

// parseSearchQuery maps query string keys onto a SearchQuery.
// A limit that is not a positive integer means no limit.
func parseSearchQuery(c echo.Context) (models.SearchQuery, error) {
	params := c.QueryParams()

	postalCodes := append([]string{}, params["postal_code"]...)
	postalCodes = append(postalCodes, params["postcode"]...)

	query := models.SearchQuery{
		GeoQuery:    params.Get("geo_query"),
		Search:      params.Get("search"),
		City:        params.Get("city"),
		States:      nonEmpty(params["state"]),
		PostalCodes: nonEmpty(postalCodes),
		Sort:        params.Get("sort"),
		Direction:   params.Get("direction"),
	}
	for _, raw := range nonEmpty(params["category"]) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return query, errors.New("category must be a numeric id")
		}
		query.Categories = append(query.Categories, id)
	}

	if limit, err := strconv.Atoi(params.Get("limit")); err == nil && limit > 0 {
		query.Limit = limit
	}

	return query, nil
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// respondError maps domain errors onto the response envelope
func respondError(c echo.Context, msg string, err error) error {
	var parseErr *locations.CsvParseError

	switch {
	case errors.Is(err, locations.ErrInvalidQuery),
		errors.Is(err, locations.ErrInvalidDuplicatesField),
		errors.Is(err, locations.ErrInvalidCategory),
		errors.As(err, &parseErr):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, locations.ErrLocationNotFound),
		errors.Is(err, locations.ErrCategoryNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, locations.ErrDuplicateCategory):
		return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), msg,
		logger.String("path", c.Path()),
		logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, strings.ToLower(msg))
}
