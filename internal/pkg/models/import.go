package models

// Duplicate detection fields accepted by the importer
const (
	DuplicatesFieldOriginalName = "original_name"
	DuplicatesFieldName         = "name"
)

// Import source formats
const (
	ImportFormatCSV  = "csv"
	ImportFormatXLSX = "xlsx"
)

// ImportOptions configures a single bulk import run
type ImportOptions struct {
	CategoryID      int64  `json:"category_id"`
	DuplicatesField string `json:"duplicates_field"`
	HasHeader       bool   `json:"has_header"`
	Format          string `json:"format"`
}

// ImportRow is one parsed input record
type ImportRow struct {
	Line       int    `json:"line"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// RowOutcome classifies what happened to an imported row
type RowOutcome string

const (
	RowCreated            RowOutcome = "created"
	RowReactivated        RowOutcome = "reactivated"
	RowAmbiguousDuplicate RowOutcome = "ambiguous_duplicate"
	RowError              RowOutcome = "error"
)

// RowResult is the per-row outcome of an import
type RowResult struct {
	Line       int        `json:"line"`
	Name       string     `json:"name"`
	Outcome    RowOutcome `json:"outcome"`
	LocationID int64      `json:"location_id,omitempty"`
	Message    string     `json:"message,omitempty"`
}

// ImportReport summarises a bulk import run.
// Errors is true only when the input could not be parsed.
type ImportReport struct {
	Errors       bool        `json:"errors"`
	Warnings     []string    `json:"warnings"`
	Created      []string    `json:"created"`
	Skipped      []string    `json:"skipped"`
	CreatedCount int         `json:"created_count"`
	SkippedCount int         `json:"skipped_count"`
	UploadCount  int         `json:"upload_count"`
	Results      []RowResult `json:"results"`
}

// NewImportReport returns an empty report with non-nil lists
func NewImportReport() *ImportReport {
	return &ImportReport{
		Warnings: []string{},
		Created:  []string{},
		Skipped:  []string{},
		Results:  []RowResult{},
	}
}

// Add records a row result and keeps the aggregate lists in sync
func (r *ImportReport) Add(result RowResult) {
	r.Results = append(r.Results, result)
	switch result.Outcome {
	case RowCreated:
		r.Created = append(r.Created, result.Name)
	case RowReactivated:
		r.Skipped = append(r.Skipped, result.Name)
	default:
		if result.Message != "" {
			r.Warnings = append(r.Warnings, result.Message)
		}
	}
	r.CreatedCount = len(r.Created)
	r.SkippedCount = len(r.Skipped)
}

// ImportEvent is published once an import has been committed
type ImportEvent struct {
	CategoryID   int64 `json:"category_id"`
	UploadCount  int   `json:"upload_count"`
	CreatedCount int   `json:"created_count"`
	SkippedCount int   `json:"skipped_count"`
	WarningCount int   `json:"warning_count"`
}
