package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
	"github.com/NiyaziPro/taskmeister/internal/wire"
)

// AssignCmd returns the assign command
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Manage assignments",
		Long: `Assign workers to houses for a date and send notification emails.

Each house can hold at most one active assignment per date; failed
notifications free the slot for re-booking.`,
	}

	cmd.AddCommand(assignEligibleCmd())
	cmd.AddCommand(assignCreateCmd())
	cmd.AddCommand(assignResendCmd())

	return cmd
}

func assignEligibleCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "eligible",
		Short: "List houses still open for a date",
		Long: `List houses with no active assignment on the given date.

Examples:
  taskmeister assign eligible --date 2026-09-01
  taskmeister assign eligible                     (defaults to today)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			adapter := wire.AssignmentAdapter()
			_, err := adapter.Eligible(cmd.Context(), date)
			return err
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Assignment date, YYYY-MM-DD (default: today)")

	return cmd
}

func assignCreateCmd() *cobra.Command {
	var workerID string
	var houseIDs []string
	var date string
	var quantity int
	var comment string
	var noSend bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Assign a worker to one or more houses",
		Long: `Record assignments and email the worker. Repeat --house to book
several houses for the same date; the worker receives one email
listing all of them.

Each house must be free on the date; a second booking of the same
(house, date) slot rejects the whole command. A failed email keeps the
assignments on record with status failed so they can be resent.

Examples:
  taskmeister assign create --worker WRK-001 --house HSE-001 --date 2026-09-01 --quantity 2
  taskmeister assign create --worker WRK-001 --house HSE-001 --house HSE-002 --quantity 1
  taskmeister assign create --worker WRK-001 --house HSE-002 --comment "keys under mat" --no-send`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			adapter := wire.AssignmentAdapter()
			_, err := adapter.Create(cmd.Context(), primary.CreateAssignmentsRequest{
				WorkerID: workerID,
				HouseIDs: houseIDs,
				Date:     date,
				Quantity: quantity,
				Comment:  comment,
			}, noSend)
			return err
		},
	}

	cmd.Flags().StringVarP(&workerID, "worker", "w", "", "Worker ID (required)")
	cmd.Flags().StringSliceVarP(&houseIDs, "house", "H", nil, "House ID; repeat to book several houses (required)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Assignment date, YYYY-MM-DD (default: today)")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Number of bedding sets")
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "Free-text note for the worker")
	cmd.Flags().BoolVar(&noSend, "no-send", false, "Record the assignment without emailing")
	cmd.MarkFlagRequired("worker")
	cmd.MarkFlagRequired("house")

	return cmd
}

func assignResendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resend [assignment-id]",
		Short: "Retry a failed or pending notification",
		Long: `Resend the notification email for an assignment. The existing
record is updated in place; assignments already sent are rejected.

Examples:
  taskmeister assign resend ASG-003`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.AssignmentAdapter()
			_, err := adapter.Resend(cmd.Context(), args[0])
			return err
		},
	}
}
