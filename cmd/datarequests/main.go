package main

import (
	"os"

	"github.com/spf13/cobra"

	"datarequests/internal/interfaces/cli/migrate"
	"datarequests/internal/interfaces/cli/server"
	"datarequests/internal/interfaces/cli/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "datarequests",
		Short: "Data requests - ask for datasets that are not yet published",
		Long:  `datarequests serves the data request API and ships migration and user administration commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
