package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linesmerrill/hospital-api/api/handlers"
	"github.com/linesmerrill/hospital-api/config"
)

var rootCmd = &cobra.Command{
	Use:   "hospital-api",
	Short: "Backend for the hospital admin dashboard",
	Long: `hospital-api serves the admin dashboard, appointments, patient profiles,
prescriptions and records over HTTP.

Examples:

  hospital-api serve
  hospital-api indexes
  hospital-api seed --password changeme123
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(indexesCmd)
}

// connect loads config and opens the database. The caller closes the app.
func connect(ctx context.Context) (*handlers.App, error) {
	a := &handlers.App{Config: *config.New()}
	if err := a.Initialize(ctx); err != nil {
		return nil, err
	}
	return a, nil
}
