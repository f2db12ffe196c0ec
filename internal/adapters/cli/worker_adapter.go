// Package cli contains thin adapters that translate CLI operations into
// service calls and render the results. Adapters depend only on the
// primary port interfaces, enabling easy testing with mocks.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
)

// WorkerAdapter is a thin adapter that translates CLI operations to WorkerService calls.
type WorkerAdapter struct {
	service primary.WorkerService
	out     io.Writer
}

// NewWorkerAdapter creates a new WorkerAdapter with the given service.
func NewWorkerAdapter(service primary.WorkerService, out io.Writer) *WorkerAdapter {
	return &WorkerAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a worker and prints the assigned ID.
func (a *WorkerAdapter) Create(ctx context.Context, name, email, phone string) (*primary.Worker, error) {
	worker, err := a.service.CreateWorker(ctx, primary.CreateWorkerRequest{
		Name:  name,
		Email: email,
		Phone: phone,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Created worker %s: %s <%s>\n", worker.ID, worker.Name, worker.Email)
	return worker, nil
}

// List lists all workers ordered by name.
func (a *WorkerAdapter) List(ctx context.Context) ([]*primary.Worker, error) {
	workers, err := a.service.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	if len(workers) == 0 {
		fmt.Fprintln(a.out, "No workers found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Add your first worker:")
		fmt.Fprintln(a.out, "  taskmeister worker add --name \"Ayse Demir\" --email ayse@example.com")
		return workers, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
	fmt.Fprintln(w, "--\t----\t-----\t-----")

	for _, worker := range workers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			worker.ID,
			worker.Name,
			worker.Email,
			worker.Phone,
		)
	}

	w.Flush()
	return workers, nil
}

// Update applies non-empty fields to an existing worker.
func (a *WorkerAdapter) Update(ctx context.Context, workerID, name, email, phone string) error {
	err := a.service.UpdateWorker(ctx, primary.UpdateWorkerRequest{
		WorkerID: workerID,
		Name:     name,
		Email:    email,
		Phone:    phone,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Updated worker %s\n", workerID)
	return nil
}

// Delete removes a worker. Workers with assignment history are kept.
func (a *WorkerAdapter) Delete(ctx context.Context, workerID string) error {
	worker, err := a.service.GetWorker(ctx, workerID)
	if err != nil {
		return err
	}

	if err := a.service.DeleteWorker(ctx, workerID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted worker %s: %s\n", worker.ID, worker.Name)
	return nil
}
