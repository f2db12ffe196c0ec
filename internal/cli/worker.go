// Package cli defines the cobra command tree. Commands parse flags and
// delegate to the adapters in internal/adapters/cli.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/NiyaziPro/taskmeister/internal/wire"
)

// WorkerCmd returns the worker command
func WorkerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Manage workers",
		Long:  `Add, list, update, and delete workers who receive house assignments.`,
	}

	cmd.AddCommand(workerAddCmd())
	cmd.AddCommand(workerListCmd())
	cmd.AddCommand(workerUpdateCmd())
	cmd.AddCommand(workerDeleteCmd())

	return cmd
}

func workerAddCmd() *cobra.Command {
	var name string
	var email string
	var phone string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new worker",
		Long: `Add a new worker with a sequential ID.

Examples:
  taskmeister worker add --name "Ayse Demir" --email ayse@example.com
  taskmeister worker add --name "Mehmet Kaya" --email mehmet@example.com --phone "+90 555 111 2233"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.WorkerAdapter()
			_, err := adapter.Create(cmd.Context(), name, email, phone)
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Worker name (required)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Worker email (required)")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "Worker phone")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

func workerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all workers",
		Long:  `List all workers ordered by name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.WorkerAdapter()
			_, err := adapter.List(cmd.Context())
			return err
		},
	}
}

func workerUpdateCmd() *cobra.Command {
	var name string
	var email string
	var phone string

	cmd := &cobra.Command{
		Use:   "update [worker-id]",
		Short: "Update a worker's details",
		Long: `Update a worker's name, email, or phone. Omitted flags keep the
stored value.

Examples:
  taskmeister worker update WRK-001 --email ayse.demir@example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.WorkerAdapter()
			return adapter.Update(cmd.Context(), args[0], name, email, phone)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "New email")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "New phone")

	return cmd
}

func workerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [worker-id]",
		Short: "Delete a worker",
		Long: `Delete a worker. Workers referenced by assignment history cannot
be deleted; history is permanent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.WorkerAdapter()
			return adapter.Delete(cmd.Context(), args[0])
		},
	}
}
