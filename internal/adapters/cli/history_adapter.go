package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
)

// HistoryAdapter is a thin adapter that translates CLI operations to
// HistoryService calls.
type HistoryAdapter struct {
	service primary.HistoryService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.HistoryService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// List renders the assignment history matching the filters, newest
// assignment date first.
func (a *HistoryAdapter) List(ctx context.Context, filters primary.HistoryFilters) ([]*primary.Assignment, error) {
	assignments, err := a.service.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	if len(assignments) == 0 {
		fmt.Fprintln(a.out, "No assignments found.")
		return assignments, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tWORKER\tHOUSE\tQTY\tSTATUS\tCOMMENT")
	fmt.Fprintln(w, "--\t----\t------\t-----\t---\t------\t-------")

	for _, asg := range assignments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			asg.ID,
			asg.Date,
			asg.WorkerName,
			asg.HouseName,
			asg.Quantity,
			asg.Status,
			asg.Comment,
		)
	}

	w.Flush()
	fmt.Fprintf(a.out, "\n%d assignment(s)\n", len(assignments))
	return assignments, nil
}

// Export writes the matching history as CSV. An empty path writes to
// standard output; otherwise the file is created or truncated.
func (a *HistoryAdapter) Export(ctx context.Context, filters primary.HistoryFilters, path string) (int, error) {
	if path == "" {
		return a.service.ExportCSV(ctx, filters, a.out)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	count, err := a.service.ExportCSV(ctx, filters, f)
	if err != nil {
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Exported %d assignment(s) to %s\n", count, path)
	return count, nil
}
