package cli

import (
	"github.com/spf13/cobra"

	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
	"github.com/NiyaziPro/taskmeister/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var workerID string
	var houseID string
	var dateFrom string
	var dateTo string
	var search string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse assignment history",
		Long: `List past assignments, newest date first. All filters combine
with AND.

Examples:
  taskmeister history
  taskmeister history --worker WRK-001
  taskmeister history --from 2026-09-01 --to 2026-09-30
  taskmeister history --search "roof"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HistoryAdapter()
			_, err := adapter.List(cmd.Context(), primary.HistoryFilters{
				WorkerID: workerID,
				HouseID:  houseID,
				DateFrom: dateFrom,
				DateTo:   dateTo,
				Search:   search,
			})
			return err
		},
	}

	cmd.PersistentFlags().StringVarP(&workerID, "worker", "w", "", "Filter by worker ID")
	cmd.PersistentFlags().StringVarP(&houseID, "house", "H", "", "Filter by house ID")
	cmd.PersistentFlags().StringVar(&dateFrom, "from", "", "Earliest assignment date, inclusive")
	cmd.PersistentFlags().StringVar(&dateTo, "to", "", "Latest assignment date, inclusive")
	cmd.PersistentFlags().StringVarP(&search, "search", "s", "", "Case-insensitive comment search")

	cmd.AddCommand(historyExportCmd(&workerID, &houseID, &dateFrom, &dateTo, &search))

	return cmd
}

func historyExportCmd(workerID, houseID, dateFrom, dateTo, search *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export history as CSV",
		Long: `Export matching assignments as CSV with a fixed header row. The
same filters as 'history' apply.

Examples:
  taskmeister history export --output september.csv --from 2026-09-01 --to 2026-09-30
  taskmeister history export                         (writes to stdout)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HistoryAdapter()
			_, err := adapter.Export(cmd.Context(), primary.HistoryFilters{
				WorkerID: *workerID,
				HouseID:  *houseID,
				DateFrom: *dateFrom,
				DateTo:   *dateTo,
				Search:   *search,
			}, output)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default: stdout)")

	return cmd
}
