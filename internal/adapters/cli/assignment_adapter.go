package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
)

// AssignmentAdapter is a thin adapter that translates CLI operations to
// AssignmentService calls.
type AssignmentAdapter struct {
	service primary.AssignmentService
	out     io.Writer
}

// NewAssignmentAdapter creates a new AssignmentAdapter with the given service.
func NewAssignmentAdapter(service primary.AssignmentService, out io.Writer) *AssignmentAdapter {
	return &AssignmentAdapter{
		service: service,
		out:     out,
	}
}

// Eligible lists houses still open for the given date.
func (a *AssignmentAdapter) Eligible(ctx context.Context, date string) ([]*primary.House, error) {
	houses, err := a.service.ListEligibleHouses(ctx, date)
	if err != nil {
		return nil, err
	}

	if len(houses) == 0 {
		fmt.Fprintf(a.out, "No houses available on %s.\n", date)
		return houses, nil
	}

	fmt.Fprintf(a.out, "Houses available on %s:\n\n", date)

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMMENT")
	fmt.Fprintln(w, "--\t----\t-------")
	for _, house := range houses {
		fmt.Fprintf(w, "%s\t%s\t%s\n", house.ID, house.Name, house.Comment)
	}
	w.Flush()

	return houses, nil
}

// Create books a worker into one or more houses for a date and, unless
// deferred, sends a single notification email listing every house. A
// failed send leaves the assignments on record with status failed; the
// send error is reported but does not undo the bookings.
func (a *AssignmentAdapter) Create(ctx context.Context, req primary.CreateAssignmentsRequest, skipSend bool) ([]*primary.Assignment, error) {
	resp, err := a.service.CreateAssignments(ctx, req)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Assignments))
	for _, asg := range resp.Assignments {
		fmt.Fprintf(a.out, "✓ Created assignment %s: %s → %s on %s (%d set(s))\n",
			asg.ID,
			asg.WorkerName,
			asg.HouseName,
			asg.Date,
			asg.Quantity,
		)
		ids = append(ids, asg.ID)
	}

	if skipSend {
		fmt.Fprintln(a.out, "  Notification not sent; use 'taskmeister assign resend' later.")
		return resp.Assignments, nil
	}

	sent, sendErr := a.service.SendAssignments(ctx, ids)
	if sendErr != nil {
		fmt.Fprintf(a.out, "✗ Notification failed: %v\n", sendErr)
		for _, id := range ids {
			fmt.Fprintf(a.out, "  Assignment %s kept with status failed; retry with 'taskmeister assign resend %s'.\n", id, id)
		}
		if sent != nil {
			return sent, nil
		}
		return resp.Assignments, nil
	}

	fmt.Fprintf(a.out, "✓ Notification sent to %s\n", resp.Assignments[0].WorkerName)
	return sent, nil
}

// Resend retries the notification for an existing assignment.
func (a *AssignmentAdapter) Resend(ctx context.Context, assignmentID string) (*primary.Assignment, error) {
	sent, err := a.service.ResendAssignment(ctx, assignmentID)
	if err != nil {
		if sent != nil {
			fmt.Fprintf(a.out, "✗ Notification failed again: %v\n", err)
			return sent, err
		}
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Notification sent for assignment %s\n", assignmentID)
	return sent, nil
}
