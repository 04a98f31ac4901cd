package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/internal/pkg/requestcontext"
	"github.com/piresc/locations/internal/utils"
	"github.com/piresc/locations/services/locations"
	"github.com/piresc/locations/services/locations/importer"
)

// ImportLocations parses the upload and creates or reactivates one location
// per row inside a single transaction. A parse failure creates nothing and is
// reported through report.Errors instead of an error.
func (uc *locationUC) ImportLocations(ctx context.Context, r io.Reader, opts models.ImportOptions) (*models.ImportReport, error) {
	field := uc.duplicatesField(opts.DuplicatesField)
	if !locations.IsDuplicatesField(field) {
		return nil, fmt.Errorf("%w: %q", locations.ErrInvalidDuplicatesField, field)
	}

	if opts.CategoryID <= 0 {
		return nil, fmt.Errorf("%w: a category is required", locations.ErrInvalidCategory)
	}
	if _, err := uc.locationRepo.GetCategoryByID(ctx, opts.CategoryID); err != nil {
		return nil, err
	}

	rows, err := importer.Parse(r, importer.Options{
		Format:     opts.Format,
		HasHeader:  opts.HasHeader,
		SampleSize: uc.cfg.Import.SampleSize,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Import aborted, upload could not be parsed",
			logger.Int64("category_id", opts.CategoryID),
			logger.ErrorField(err))

		report := models.NewImportReport()
		report.Errors = true
		report.Warnings = append(report.Warnings, err.Error())
		return report, nil
	}

	var report *models.ImportReport
	err = uc.locationRepo.RunImport(ctx, func(store locations.ImportStore) error {
		report = models.NewImportReport()

		batch, err := store.NextUploadCount(ctx)
		if err != nil {
			return err
		}
		report.UploadCount = batch
		batchCtx := requestcontext.WithImportBatch(ctx, batch)

		for _, row := range rows {
			result, err := importRow(batchCtx, store, row, field, batch, opts.CategoryID)
			if err != nil {
				return fmt.Errorf("row %d: %w", row.Line, err)
			}
			report.Add(result)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}

	logger.InfoCtx(requestcontext.WithImportBatch(ctx, report.UploadCount), "Import completed",
		logger.Int("created", report.CreatedCount),
		logger.Int("skipped", report.SkippedCount),
		logger.Int("warnings", len(report.Warnings)))

	if uc.locationGW != nil {
		event := models.ImportEvent{
			CategoryID:   opts.CategoryID,
			UploadCount:  report.UploadCount,
			CreatedCount: report.CreatedCount,
			SkippedCount: report.SkippedCount,
			WarningCount: len(report.Warnings),
		}
		if err := uc.locationGW.PublishLocationsImported(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish import event", logger.ErrorField(err))
		}
	}

	return report, nil
}

func (uc *locationUC) duplicatesField(requested string) string {
	if requested != "" {
		return requested
	}
	if uc.cfg.Import.DuplicatesField != "" {
		return uc.cfg.Import.DuplicatesField
	}
	return models.DuplicatesFieldOriginalName
}

// importRow classifies a single row. Only store failures are returned as errors.
func importRow(ctx context.Context, store locations.ImportStore, row models.ImportRow, field string, batch int, categoryID int64) (models.RowResult, error) {
	result := models.RowResult{Line: row.Line, Name: row.Name}

	if row.Name == "" {
		result.Outcome = models.RowError
		result.Message = fmt.Sprintf("Row %d has no name", row.Line)
		return result, nil
	}

	state := strings.ToUpper(row.State)
	if !utils.IsStateCode(state) {
		result.Outcome = models.RowError
		result.Message = fmt.Sprintf("%s has an invalid state %q", row.Name, row.State)
		return result, nil
	}

	if column, limit, ok := oversizedField(row); ok {
		result.Outcome = models.RowError
		result.Message = fmt.Sprintf("%s has a %s longer than %d characters", row.Name, column, limit)
		return result, nil
	}

	name := utils.TitleCase(row.Name)
	key := row.Name
	if field == models.DuplicatesFieldName {
		key = name
	}

	matches, err := store.FindByField(ctx, field, key)
	if err != nil {
		return result, err
	}

	switch len(matches) {
	case 0:
		originalName := row.Name
		location := &models.Location{
			Name:          name,
			OriginalName:  &originalName,
			StreetAddress: optional(utils.TitleCase(row.Address)),
			City:          utils.TitleCase(row.City),
			State:         state,
			PostalCode:    optional(row.PostalCode),
			IsActive:      true,
			UploadCount:   batch,
		}
		if err := store.CreateLocation(ctx, location, categoryID); err != nil {
			return result, err
		}
		result.Outcome = models.RowCreated
		result.LocationID = location.ID

	case 1:
		existing := matches[0]
		if !existing.IsActive {
			if err := store.Reactivate(ctx, existing.ID); err != nil {
				return result, err
			}
		}
		result.Outcome = models.RowReactivated
		result.LocationID = existing.ID

	default:
		result.Outcome = models.RowAmbiguousDuplicate
		result.Message = fmt.Sprintf("%s is already duplicated in the database", row.Name)
		logger.WarnCtx(ctx, "Ambiguous duplicate row",
			logger.String("field", field),
			logger.Int("line", row.Line),
			logger.Int("matches", len(matches)))
	}

	return result, nil
}

// Column widths of the locations table
const (
	maxNameLength       = 100
	maxAddressLength    = 200
	maxCityLength       = 100
	maxPostalCodeLength = 10
)

// oversizedField reports the first field that does not fit its column
func oversizedField(row models.ImportRow) (string, int, bool) {
	fields := []struct {
		column string
		value  string
		limit  int
	}{
		{"name", row.Name, maxNameLength},
		{"street address", row.Address, maxAddressLength},
		{"city", row.City, maxCityLength},
		{"postal code", row.PostalCode, maxPostalCodeLength},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.limit {
			return f.column, f.limit, true
		}
	}
	return "", 0, false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
