package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NiyaziPro/taskmeister/internal/cli"
	"github.com/NiyaziPro/taskmeister/internal/version"
	"github.com/NiyaziPro/taskmeister/internal/wire"
)

func main() {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:     "taskmeister",
		Short:   "taskmeister - worker-to-house assignment manager",
		Version: version.String(),
		Long: `taskmeister assigns workers to houses for cleaning dates, emails
each worker their assignment, and keeps a permanent history of who
worked where.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfgFile != "" {
				wire.SetConfigPath(cfgFile)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.taskmeister/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(cli.WorkerCmd())
	rootCmd.AddCommand(cli.HouseCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.StatusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
