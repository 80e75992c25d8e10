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

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"gorm.io/gorm"
)

type gormNotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *gormNotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (g *gormNotificationRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}

func (g *gormNotificationRepository) CreateBatch(tx *gorm.DB, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return g.getDB(tx).Create(&notifications).Error
}

// ListUndelivered returns pending and retryable failed notifications, oldest
// first, so the delivery daemon drains in arrival order.
func (g *gormNotificationRepository) ListUndelivered(maxAttempts int, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := g.db.
		Where("state IN ? AND attempts < ?", []dtos.NotificationState{dtos.NotificationStatePending, dtos.NotificationStateFailed}, maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (g *gormNotificationRepository) MarkSent(tx *gorm.DB, id uuid.UUID) error {
	return g.getDB(tx).Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"state":           dtos.NotificationStateSent,
			"attempts":        gorm.Expr("attempts + 1"),
			"last_attempt_at": time.Now(),
		}).Error
}

func (g *gormNotificationRepository) MarkFailed(tx *gorm.DB, id uuid.UUID) error {
	return g.getDB(tx).Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"state":           dtos.NotificationStateFailed,
			"attempts":        gorm.Expr("attempts + 1"),
			"last_attempt_at": time.Now(),
		}).Error
}
