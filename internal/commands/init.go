package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/somma-dev/somma/internal/config"
)

func newInitCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a Somma workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "data directory, relative to the workspace")

	return cmd
}

func runInit(dir, dataDir string) error {
	absData := filepath.Join(dir, dataDir)
	if err := os.MkdirAll(absData, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "somma.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(absData)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized Somma workspace at %s\n", dir)
	return nil
}
