package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nhadat/marketplace/internal/interfaces/cli/migrate"
	"github.com/nhadat/marketplace/internal/interfaces/cli/seed"
	"github.com/nhadat/marketplace/internal/interfaces/cli/server"
)

// @title Marketplace API
// @version 1.0
// @description Real-estate listing marketplace: Google sign-in, listing credits, moderation, packages and buyer-seller chat.
// @BasePath /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
func main() {
	rootCmd := &cobra.Command{
		Use:   "marketplace",
		Short: "Marketplace - real-estate listing service",
		Long:  `Marketplace runs the listing API and ships the migration and seeding tools it needs.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
