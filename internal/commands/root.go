// Package commands wires the CLI surface over storage, registry, and
// the balance engine.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/somma-dev/somma/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "somma",
		Short:   "Personal finance ledger with hybrid cloud/local storage",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "somma.yaml", "path to config file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand(&configPath))
	rootCmd.AddCommand(newListCommand(&configPath))
	rootCmd.AddCommand(newEditCommand(&configPath))
	rootCmd.AddCommand(newRemoveCommand(&configPath))
	rootCmd.AddCommand(newBalanceCommand(&configPath))
	rootCmd.AddCommand(newCashflowCommand(&configPath))
	rootCmd.AddCommand(newSummaryCommand(&configPath))
	rootCmd.AddCommand(newAccountsCommand(&configPath))
	rootCmd.AddCommand(newCardsCommand(&configPath))
	rootCmd.AddCommand(newStatusCommand(&configPath))

	return rootCmd
}
