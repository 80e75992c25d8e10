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

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/dtos"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomStats is the denormalized activity counter bag of a room. It is only
// ever written by the fan-out - losing an update is acceptable, the rows
// below (messages, documents) remain authoritative.
type RoomStats struct {
	MessageCount             int        `json:"messageCount"`
	DocumentCount            int        `json:"documentCount"`
	LastOwnerActivityAt      *time.Time `json:"lastOwnerActivityAt"`
	LastConsultantActivityAt *time.Time `json:"lastConsultantActivityAt"`
	// seconds between the last owner message and the first consultant reply
	ResponseTimeSeconds *int64 `json:"responseTimeSeconds"`
}

// ApplicationRoom is the 1:1 collaboration surface of an application. It is
// created lazily the first time the application needs one (usually at
// consultant assignment) and soft-deleted when the application is archived.
type ApplicationRoom struct {
	Model
	ApplicationID uuid.UUID   `json:"applicationId" gorm:"type:uuid;uniqueIndex;not null;"`
	Application   Application `json:"-" gorm:"foreignKey:ApplicationID;references:ID;constraint:OnDelete:CASCADE;"`

	Status         dtos.RoomStatus                  `json:"status" gorm:"type:text;not null;default:'active';"`
	Priority       dtos.Priority                    `json:"priority" gorm:"type:text;not null;default:'medium';"`
	LastActivityAt time.Time                        `json:"lastActivityAt" gorm:"type:timestamp with time zone;not null;"`
	Stats          datatypes.JSONType[RoomStats]    `json:"stats" gorm:"type:jsonb;"`

	DeletedAt gorm.DeletedAt `json:"-" gorm:"index;"`
}

func (m ApplicationRoom) TableName() string {
	return "application_rooms"
}

type RoomMessage struct {
	Model
	RoomID   uuid.UUID       `json:"roomId" gorm:"type:uuid;not null;index;"`
	Room     ApplicationRoom `json:"-" gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE;"`
	AuthorID uuid.UUID       `json:"authorId" gorm:"type:uuid;not null;"`
	Body     string          `json:"body" gorm:"type:text;not null;"`
}

func (m RoomMessage) TableName() string {
	return "room_messages"
}

type RoomDocument struct {
	Model
	RoomID       uuid.UUID       `json:"roomId" gorm:"type:uuid;not null;index;"`
	Room         ApplicationRoom `json:"-" gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE;"`
	UploadedByID uuid.UUID       `json:"uploadedById" gorm:"type:uuid;not null;"`
	FileName     string          `json:"fileName" gorm:"type:text;not null;"`
}

func (m RoomDocument) TableName() string {
	return "room_documents"
}
