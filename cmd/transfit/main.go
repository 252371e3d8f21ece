package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/TeodorSim/TransfIT/internal/interfaces/cli/migrate"
	"github.com/TeodorSim/TransfIT/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transfit",
		Short: "TransfIT - clinic scheduling integration service",
		Long:  `TransfIT connects clinic Google accounts to scheduling automation, provisioning credentials and workflows for each clinic.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
