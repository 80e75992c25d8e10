// Copyright (C) 2025 Incentra GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package daemons

import (
	"log/slog"
	"time"

	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/monitoring"
	"github.com/incentra-dev/incentra/shared"
)

// AssignmentRetryDaemon periodically re-runs automatic matching for
// submitted applications without a consultant. Besides the fixed interval it
// listens on the capacity channel, so a freed-up consultant gets new work
// without waiting for the next tick.
type AssignmentRetryDaemon struct {
	applicationRepository shared.ApplicationRepository
	assignmentService     shared.AssignmentService
	broker                shared.PubSubBroker
	config                shared.EngineConfig
}

func NewAssignmentRetryDaemon(applicationRepository shared.ApplicationRepository, assignmentService shared.AssignmentService, broker shared.PubSubBroker, config shared.EngineConfig) *AssignmentRetryDaemon {
	return &AssignmentRetryDaemon{
		applicationRepository: applicationRepository,
		assignmentService:     assignmentService,
		broker:                broker,
		config:                config,
	}
}

func (daemon *AssignmentRetryDaemon) Start() {
	go func() {
		ticker := time.NewTicker(daemon.config.AssignmentRetryInterval)
		defer ticker.Stop()

		var capacityChanged <-chan map[string]any
		if daemon.broker != nil {
			ch, err := daemon.broker.Subscribe(shared.ChannelCapacityChanged)
			if err != nil {
				monitoring.Alert("could not subscribe to capacity channel", err)
			} else {
				capacityChanged = ch
			}
		}

		for {
			select {
			case <-ticker.C:
			case _, ok := <-capacityChanged:
				if !ok {
					capacityChanged = nil
					continue
				}
			}
			if err := daemon.RetryUnassigned(); err != nil {
				monitoring.Alert("assignment retry run failed", err)
			}
		}
	}()
}

// RetryUnassigned runs one matching pass over the backlog. Per-application
// matching failures are expected (no eligible consultant, lost races) and do
// not abort the pass.
func (daemon *AssignmentRetryDaemon) RetryUnassigned() error {
	start := time.Now()
	defer func() {
		monitoring.AssignmentRetryDuration.Observe(time.Since(start).Seconds())
	}()

	applications, err := daemon.applicationRepository.ListUnassignedSubmitted()
	if err != nil {
		return err
	}
	if len(applications) == 0 {
		return nil
	}

	slog.Info("retrying automatic assignment", "backlog", len(applications))
	assigned := 0
	for _, application := range applications {
		_, err := daemon.assignmentService.Assign(application.ID, shared.AssignmentTrigger{
			Type: dtos.AssignmentTypeAutomatic,
		})
		if err != nil {
			if engineErr := shared.AsEngineError(err); engineErr != nil {
				slog.Debug("application stays unassigned", "applicationId", application.ID, "kind", engineErr.Kind)
				continue
			}
			monitoring.Alert("automatic assignment retry failed", err)
			continue
		}
		assigned++
	}

	slog.Info("assignment retry finished", "assigned", assigned, "backlog", len(applications), "duration", time.Since(start))
	return nil
}

var _ shared.AssignmentRetrier = (*AssignmentRetryDaemon)(nil)
