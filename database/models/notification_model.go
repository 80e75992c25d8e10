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
)

// Notification is an observational record - it never carries authoritative
// state. Delivery happens out-of-band through the notification daemon, so a
// failed delivery can be retried without touching the event that caused it.
type Notification struct {
	Model
	RecipientID   uuid.UUID              `json:"recipientId" gorm:"type:uuid;not null;index;"`
	EventType     dtos.ActivityEventType `json:"eventType" gorm:"type:text;not null;"`
	ApplicationID *uuid.UUID             `json:"applicationId" gorm:"type:uuid;index;"`
	Title         string                 `json:"title" gorm:"type:text;not null;"`
	Body          string                 `json:"body" gorm:"type:text;"`

	State         dtos.NotificationState `json:"state" gorm:"type:text;not null;default:'pending';index;"`
	Attempts      int                    `json:"attempts" gorm:"not null;default:0;"`
	LastAttemptAt *time.Time             `json:"lastAttemptAt" gorm:"type:timestamp with time zone;"`
	ReadAt        *time.Time             `json:"readAt" gorm:"type:timestamp with time zone;"`
}

func (m Notification) TableName() string {
	return "notifications"
}
