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

// SupportTicket shares the lifecycle vocabulary but is only loosely coupled
// to applications - it does not require a consultant.
type SupportTicket struct {
	Model
	Subject  string            `json:"subject" gorm:"type:text;not null;"`
	Body     string            `json:"body" gorm:"type:text;"`
	Status   dtos.TicketStatus `json:"status" gorm:"type:text;not null;default:'open';"`
	Priority dtos.Priority     `json:"priority" gorm:"type:text;not null;default:'medium';"`

	OpenedByID    uuid.UUID  `json:"openedById" gorm:"type:uuid;not null;index;"`
	OpenedBy      User       `json:"-" gorm:"foreignKey:OpenedByID;references:ID;"`
	ApplicationID *uuid.UUID `json:"applicationId" gorm:"type:uuid;index;"`
	IncentiveID   *uuid.UUID `json:"incentiveId" gorm:"type:uuid;"`

	ClosedAt *time.Time `json:"closedAt" gorm:"type:timestamp with time zone;"`
}

func (m SupportTicket) TableName() string {
	return "support_tickets"
}
