package main

import (
	"os"

	"github.com/spf13/cobra"

	"fixflow/internal/interfaces/cli/migrate"
	"fixflow/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fixflow",
		Short: "fixflow - repair-shop work-item tracking service",
		Long:  `fixflow tracks repair tickets, warranty tickets, work orders and quotes under one tracking-number scheme, with a customer dashboard and an anonymous public lookup.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
