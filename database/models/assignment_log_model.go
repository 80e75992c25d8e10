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

// AssignmentLogEntry is one row of the append-only assignment ledger. An
// entry is open while UnassignedAt is null; at most one entry per application
// may be open at any time - enforced by a partial unique index on
// (application_id) WHERE unassigned_at IS NULL. Once closed, an entry is
// immutable; corrections are new entries.
type AssignmentLogEntry struct {
	Model
	ApplicationID uuid.UUID   `json:"applicationId" gorm:"type:uuid;not null;index;"`
	Application   Application `json:"-" gorm:"foreignKey:ApplicationID;references:ID;constraint:OnDelete:CASCADE;"`
	ConsultantID  uuid.UUID   `json:"consultantId" gorm:"type:uuid;not null;index;"`
	Consultant    User        `json:"-" gorm:"foreignKey:ConsultantID;references:ID;"`

	// AssignedByID is null for system-automatic assignments.
	AssignedByID   *uuid.UUID          `json:"assignedById" gorm:"type:uuid;"`
	AssignmentType dtos.AssignmentType `json:"assignmentType" gorm:"type:text;not null;"`
	// Sector at the time of assignment - the application's sector may change later.
	Sector               string     `json:"sector" gorm:"type:text;not null;"`
	PreviousConsultantID *uuid.UUID `json:"previousConsultantId" gorm:"type:uuid;"`
	// CapacityOverride records that an admin deliberately exceeded the
	// consultant's capacity limit.
	CapacityOverride bool    `json:"capacityOverride" gorm:"not null;default:false;"`
	Note             *string `json:"note" gorm:"type:text;"`

	UnassignedAt       *time.Time `json:"unassignedAt" gorm:"type:timestamp with time zone;"`
	UnassignedByID     *uuid.UUID `json:"unassignedById" gorm:"type:uuid;"`
	UnassignmentReason *string    `json:"unassignmentReason" gorm:"type:text;"`
}

func (m AssignmentLogEntry) TableName() string {
	return "assignment_log_entries"
}

func (m *AssignmentLogEntry) IsOpen() bool {
	return m.UnassignedAt == nil
}
