package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/edifai-io/edifai/internal/interfaces/cli/migrate"
	"github.com/edifai-io/edifai/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "edifai",
		Short: "EdifAI - condominium management platform",
		Long:  `EdifAI is a multi-tenant condominium management platform with tenant provisioning, billing, and resident request tracking.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
