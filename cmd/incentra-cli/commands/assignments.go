package commands

import (
	"log/slog"

	"github.com/incentra-dev/incentra/daemons"
	"github.com/incentra-dev/incentra/database/repositories"
	"github.com/incentra-dev/incentra/services"
	"github.com/incentra-dev/incentra/shared"
	"github.com/spf13/cobra"
)

func NewAssignmentsCommand() *cobra.Command {
	assignments := cobra.Command{
		Use:   "assignments",
		Short: "Operate the assignment engine",
	}

	assignments.AddCommand(newRetryCommand())
	return &assignments
}

func newRetryCommand() *cobra.Command {
	retry := cobra.Command{
		Use:   "retry",
		Short: "Run one automatic matching sweep over the unassigned backlog",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			config, err := shared.LoadEngineConfig()
			if err != nil {
				slog.Error("could not load engine configuration", "err", err)
				return
			}

			applicationRepository := repositories.NewApplicationRepository(db)
			assignmentLogRepository := repositories.NewAssignmentLogRepository(db)
			userRepository := repositories.NewUserRepository(db)
			roomRepository := repositories.NewRoomRepository(db)
			notificationRepository := repositories.NewNotificationRepository(db)

			// a one-shot sweep has no broker - fan-out degrades to
			// notifications only
			fanout := services.NewFanoutService(roomRepository, notificationRepository, userRepository, nil)
			assignmentService := services.NewAssignmentService(applicationRepository, assignmentLogRepository, userRepository, roomRepository, fanout, config)

			daemon := daemons.NewAssignmentRetryDaemon(applicationRepository, assignmentService, nil, config)
			if err := daemon.RetryUnassigned(); err != nil {
				slog.Error("retry sweep failed", "err", err)
			}
		},
	}

	return &retry
}
