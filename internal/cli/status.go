package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
	"github.com/NiyaziPro/taskmeister/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the day's assignments at a glance",
		Long: `Show all assignments for a date with notification state, plus the
houses still open.

Examples:
  taskmeister status
  taskmeister status --date 2026-09-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			return runStatus(cmd, date)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date to report on, YYYY-MM-DD (default: today)")

	return cmd
}

func runStatus(cmd *cobra.Command, date string) error {
	historyService := wire.HistoryService()
	assignmentService := wire.AssignmentService()

	assignments, err := historyService.List(cmd.Context(), primary.HistoryFilters{
		DateFrom: date,
		DateTo:   date,
	})
	if err != nil {
		return err
	}

	open, err := assignmentService.ListEligibleHouses(cmd.Context(), date)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nAssignments for %s\n\n", date)

	if len(assignments) == 0 {
		fmt.Fprintln(out, "  No assignments yet.")
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		for _, asg := range assignments {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%d set(s)\t%s\n",
				asg.ID,
				asg.WorkerName,
				asg.HouseName,
				asg.Quantity,
				statusMarker(asg),
			)
		}
		w.Flush()
	}

	fmt.Fprintf(out, "\n%d house(s) still open", len(open))
	if len(open) > 0 {
		fmt.Fprint(out, ":")
		for _, h := range open {
			fmt.Fprintf(out, " %s", h.Name)
		}
	}
	fmt.Fprintln(out)

	return nil
}

func statusMarker(asg *primary.Assignment) string {
	switch asg.Status {
	case "sent":
		return color.New(color.FgHiGreen).Sprint("sent")
	case "failed":
		marker := color.New(color.FgRed).Sprint("failed")
		if asg.SendError != "" {
			marker += color.New(color.FgYellow).Sprintf(" (%s)", asg.SendError)
		}
		return marker
	default:
		return color.New(color.FgCyan).Sprint("pending")
	}
}
