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
	"testing"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/mocks"
	"github.com/incentra-dev/incentra/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pendingNotification() models.Notification {
	notification := models.Notification{
		RecipientID: uuid.New(),
		Title:       "Application INC-2025-000042 assigned",
	}
	notification.ID = uuid.New()
	return notification
}

func TestDeliverPending(t *testing.T) {
	config := shared.EngineConfig{NotificationMaxAttempts: 5}

	t.Run("marks a delivered notification as sent", func(t *testing.T) {
		notificationRepository := mocks.NewNotificationRepository(t)
		deliverer := mocks.NewNotificationDeliverer(t)
		daemon := NewNotificationDaemon(notificationRepository, deliverer, config)

		notification := pendingNotification()
		notificationRepository.On("ListUndelivered", 5, notificationBatchSize).Return([]models.Notification{notification}, nil)
		deliverer.On("Deliver", notification).Return(nil)
		notificationRepository.On("MarkSent", mock.Anything, notification.ID).Return(nil)

		err := daemon.DeliverPending()
		assert.Nil(t, err)
	})

	t.Run("records a failed attempt and keeps going", func(t *testing.T) {
		notificationRepository := mocks.NewNotificationRepository(t)
		deliverer := mocks.NewNotificationDeliverer(t)
		daemon := NewNotificationDaemon(notificationRepository, deliverer, config)

		failing := pendingNotification()
		healthy := pendingNotification()
		notificationRepository.On("ListUndelivered", 5, notificationBatchSize).Return([]models.Notification{failing, healthy}, nil)
		deliverer.On("Deliver", failing).Return(errors.New("smtp timeout"))
		notificationRepository.On("MarkFailed", mock.Anything, failing.ID).Return(nil)
		deliverer.On("Deliver", healthy).Return(nil)
		notificationRepository.On("MarkSent", mock.Anything, healthy.ID).Return(nil)

		err := daemon.DeliverPending()
		assert.Nil(t, err)
	})

	t.Run("propagates outbox read failures", func(t *testing.T) {
		notificationRepository := mocks.NewNotificationRepository(t)
		deliverer := mocks.NewNotificationDeliverer(t)
		daemon := NewNotificationDaemon(notificationRepository, deliverer, config)

		notificationRepository.On("ListUndelivered", 5, notificationBatchSize).Return(nil, errors.New("connection refused"))

		err := daemon.DeliverPending()
		assert.Error(t, err)
		deliverer.AssertNotCalled(t, "Deliver", mock.Anything)
	})
}
