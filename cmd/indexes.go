package cmd

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/linesmerrill/hospital-api/databases"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the mongo indexes the API relies on",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		a, err := connect(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		if err := databases.EnsureIndexes(ctx, a.DB()); err != nil {
			return err
		}
		color.New(color.FgGreen, color.Bold).Printf("✅ Indexes ensured on %d collections\n", len(databases.Indexes))
		return nil
	},
}
