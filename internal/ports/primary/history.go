package primary

import (
	"context"
	"io"
)

// HistoryService defines the primary port for querying and exporting
// the assignment history.
type HistoryService interface {
	// List returns assignments matching all supplied filters, ordered
	// by assignment date descending with ties in creation order.
	List(ctx context.Context, filters HistoryFilters) ([]*Assignment, error)

	// ExportCSV writes matching assignments as CSV to w and returns
	// the number of data rows written.
	ExportCSV(ctx context.Context, filters HistoryFilters, w io.Writer) (int, error)
}

// HistoryFilters contains filter options for the assignment history.
// All set filters apply conjunctively.
type HistoryFilters struct {
	WorkerID string
	HouseID  string
	DateFrom string // inclusive, YYYY-MM-DD
	DateTo   string // inclusive, YYYY-MM-DD
	Search   string // case-insensitive substring over the comment
}
