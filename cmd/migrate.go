package cmd

import (
	"cinema-catalog/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the catalog schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.InitDB(cmd.Context(), rt.config.Database)
			if err != nil {
				rt.logger.Error("Failed to connect to database", zap.Error(err))
				return err
			}
			defer db.Close()

			return database.Migrate(cmd.Context(), db, rt.logger)
		},
	}
}
