package commands

import (
	"log/slog"

	"github.com/incentra-dev/incentra/database"
	"github.com/incentra-dev/incentra/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			if err := database.RunMigrations(db); err != nil {
				slog.Error("could not run migrations", "err", err)
				return
			}
			slog.Info("migrations applied")
		},
	}

	return &migrate
}
