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

	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/monitoring"
	"github.com/incentra-dev/incentra/shared"
)

const notificationBatchSize = 100

// NotificationDaemon drains the pending notification outbox. Delivery is
// at-least-once: an entry stays pending until the deliverer succeeds or the
// attempt budget is exhausted.
type NotificationDaemon struct {
	notificationRepository shared.NotificationRepository
	deliverer              shared.NotificationDeliverer
	config                 shared.EngineConfig
}

func NewNotificationDaemon(notificationRepository shared.NotificationRepository, deliverer shared.NotificationDeliverer, config shared.EngineConfig) *NotificationDaemon {
	return &NotificationDaemon{
		notificationRepository: notificationRepository,
		deliverer:              deliverer,
		config:                 config,
	}
}

func (daemon *NotificationDaemon) Start() {
	go func() {
		ticker := time.NewTicker(daemon.config.NotificationRetryInterval)
		defer ticker.Stop()
		for range ticker.C {
			if err := daemon.DeliverPending(); err != nil {
				monitoring.Alert("notification delivery run failed", err)
			}
		}
	}()
}

func (daemon *NotificationDaemon) DeliverPending() error {
	notifications, err := daemon.notificationRepository.ListUndelivered(daemon.config.NotificationMaxAttempts, notificationBatchSize)
	if err != nil {
		return err
	}

	for _, notification := range notifications {
		if err := daemon.deliverer.Deliver(notification); err != nil {
			slog.Warn("notification delivery failed", "notificationId", notification.ID, "attempts", notification.Attempts+1, "err", err)
			monitoring.NotificationsDeliveredTotal.WithLabelValues("failed").Inc()
			if err := daemon.notificationRepository.MarkFailed(nil, notification.ID); err != nil {
				monitoring.Alert("could not record failed delivery attempt", err)
			}
			continue
		}
		monitoring.NotificationsDeliveredTotal.WithLabelValues("sent").Inc()
		if err := daemon.notificationRepository.MarkSent(nil, notification.ID); err != nil {
			monitoring.Alert("could not mark notification as sent", err)
		}
	}

	return nil
}

// LogDeliverer is the default transport. Real deployments swap in a mail or
// webhook deliverer through the fx graph.
type LogDeliverer struct{}

func NewLogDeliverer() *LogDeliverer {
	return &LogDeliverer{}
}

func (d *LogDeliverer) Deliver(notification models.Notification) error {
	slog.Info("delivering notification", "recipientId", notification.RecipientID, "eventType", notification.EventType, "title", notification.Title)
	return nil
}
