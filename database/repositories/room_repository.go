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
	"gorm.io/gorm"
)

type gormRoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *gormRoomRepository {
	return &gormRoomRepository{db: db}
}

func (g *gormRoomRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}

func (g *gormRoomRepository) FindByApplicationID(tx *gorm.DB, applicationID uuid.UUID) (models.ApplicationRoom, error) {
	var room models.ApplicationRoom
	err := g.getDB(tx).First(&room, "application_id = ?", applicationID).Error
	return room, err
}

// EnsureForApplication creates the 1:1 room if it does not exist yet.
// Concurrent callers race on the unique application_id index; the loser
// falls back to reading the winner's row.
func (g *gormRoomRepository) EnsureForApplication(tx *gorm.DB, application *models.Application) (models.ApplicationRoom, error) {
	db := g.getDB(tx)

	room, err := g.FindByApplicationID(tx, application.ID)
	if err == nil {
		return room, nil
	}

	room = models.ApplicationRoom{
		ApplicationID:  application.ID,
		Priority:       application.Priority,
		LastActivityAt: time.Now(),
	}
	if err := db.Create(&room).Error; err != nil {
		if isUniqueViolation(err, "") {
			return g.FindByApplicationID(tx, application.ID)
		}
		return models.ApplicationRoom{}, err
	}
	return room, nil
}

func (g *gormRoomRepository) Save(tx *gorm.DB, room *models.ApplicationRoom) error {
	return g.getDB(tx).Save(room).Error
}

// Archive soft-deletes the room. Messages and documents stay readable
// through Unscoped queries if an audit ever needs them.
func (g *gormRoomRepository) Archive(tx *gorm.DB, roomID uuid.UUID) error {
	return g.getDB(tx).Delete(&models.ApplicationRoom{}, "id = ?", roomID).Error
}

func (g *gormRoomRepository) CreateMessage(tx *gorm.DB, message *models.RoomMessage) error {
	return g.getDB(tx).Create(message).Error
}

func (g *gormRoomRepository) CreateDocument(tx *gorm.DB, document *models.RoomDocument) error {
	return g.getDB(tx).Create(document).Error
}
