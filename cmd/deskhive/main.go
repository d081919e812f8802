package main

import (
	"os"

	"github.com/spf13/cobra"

	"deskhive/internal/interfaces/cli/migrate"
	"deskhive/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskhive",
		Short: "Deskhive - multi-tenant IT ticketing service",
		Long:  `Deskhive is a multi-tenant IT ticketing service with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
