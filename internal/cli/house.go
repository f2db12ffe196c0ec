package cli

import (
	"github.com/spf13/cobra"

	"github.com/NiyaziPro/taskmeister/internal/wire"
)

// HouseCmd returns the house command
func HouseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "house",
		Short: "Manage houses",
		Long:  `Add, list, update, and delete houses that receive assignments.`,
	}

	cmd.AddCommand(houseAddCmd())
	cmd.AddCommand(houseListCmd())
	cmd.AddCommand(houseUpdateCmd())
	cmd.AddCommand(houseDeleteCmd())

	return cmd
}

func houseAddCmd() *cobra.Command {
	var name string
	var comment string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new house",
		Long: `Add a new house with a sequential ID.

Examples:
  taskmeister house add --name "Seaside Villa"
  taskmeister house add --name "Hilltop Cottage" --comment "gate code 4412"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HouseAdapter()
			_, err := adapter.Create(cmd.Context(), name, comment)
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "House name (required)")
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "Free-text note about the house")
	cmd.MarkFlagRequired("name")

	return cmd
}

func houseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all houses",
		Long:  `List all houses ordered by name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HouseAdapter()
			_, err := adapter.List(cmd.Context())
			return err
		},
	}
}

func houseUpdateCmd() *cobra.Command {
	var name string
	var comment string

	cmd := &cobra.Command{
		Use:   "update [house-id]",
		Short: "Update a house's details",
		Long: `Update a house's name or comment. Omitted flags keep the stored
value.

Examples:
  taskmeister house update HSE-001 --comment "new gate code 9981"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HouseAdapter()
			return adapter.Update(cmd.Context(), args[0], name, comment)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "New comment")

	return cmd
}

func houseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [house-id]",
		Short: "Delete a house",
		Long: `Delete a house. Houses referenced by assignment history cannot be
deleted; history is permanent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := wire.HouseAdapter()
			return adapter.Delete(cmd.Context(), args[0])
		},
	}
}
