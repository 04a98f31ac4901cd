package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/internal/utils"
	"github.com/piresc/locations/services/locations/importer"
)

const defaultMaxUploadSize int64 = 10 << 20

type idsRequest struct {
	IDs []int64 `json:"ids"`
}

type categoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// UploadLocations imports a CSV or XLSX upload into a category
func (h *LocationHandler) UploadLocations(c echo.Context) error {
	maxSize := h.cfg.Import.MaxUploadSize
	if maxSize <= 0 {
		maxSize = defaultMaxUploadSize
	}
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, maxSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return utils.RequestEntityTooLargeResponse(c, "upload exceeds the size limit")
		}
		return utils.BadRequestResponse(c, "file is required")
	}

	categoryID, err := strconv.ParseInt(c.FormValue("category"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "category must be a numeric id")
	}

	opts := models.ImportOptions{
		CategoryID:      categoryID,
		DuplicatesField: c.FormValue("duplicates_field"),
		Format:          c.FormValue("format"),
	}
	if opts.Format == "" {
		opts.Format = importer.DetectFormat(fileHeader.Filename)
	}
	if raw := c.FormValue("header"); raw != "" {
		if opts.HasHeader, err = strconv.ParseBool(raw); err != nil {
			return utils.BadRequestResponse(c, "header must be a boolean")
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, "Failed to read upload", err)
	}
	defer file.Close()

	logger.InfoCtx(c.Request().Context(), "Location upload received",
		logger.String("filename", fileHeader.Filename),
		logger.Int64("size", fileHeader.Size),
		logger.Int64("category_id", categoryID))

	report, err := h.locationUC.ImportLocations(c.Request().Context(), file, opts)
	if err != nil {
		return respondError(c, "Failed to import locations", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Import processed", report)
}

// GeocodeLocations geocodes the selected locations
func (h *LocationHandler) GeocodeLocations(c echo.Context) error {
	var req idsRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if len(req.IDs) == 0 {
		return utils.BadRequestResponse(c, "ids are required")
	}

	report, err := h.locationUC.GeocodeLocations(c.Request().Context(), req.IDs)
	if err != nil {
		return respondError(c, "Failed to geocode locations", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, report.Message, report)
}

// ToggleActive flips visibility of the selected locations
func (h *LocationHandler) ToggleActive(c echo.Context) error {
	var req idsRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	result, err := h.locationUC.ToggleActive(c.Request().Context(), req.IDs)
	if err != nil {
		return respondError(c, "Failed to toggle locations", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Locations updated", result)
}

// CreateCategory creates a location category
func (h *LocationHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	category, err := h.locationUC.CreateCategory(c.Request().Context(), req.Name, req.Slug)
	if err != nil {
		return respondError(c, "Failed to create category", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Category created", category)
}
