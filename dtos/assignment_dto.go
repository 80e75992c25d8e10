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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentLogEntryDTO struct {
	ID                   uuid.UUID      `json:"id"`
	ApplicationID        uuid.UUID      `json:"applicationId"`
	ConsultantID         uuid.UUID      `json:"consultantId"`
	AssignedByID         *uuid.UUID     `json:"assignedById"`
	AssignmentType       AssignmentType `json:"assignmentType"`
	Sector               string         `json:"sector"`
	PreviousConsultantID *uuid.UUID     `json:"previousConsultantId"`
	CapacityOverride     bool           `json:"capacityOverride"`
	Note                 *string        `json:"note"`
	AssignedAt           time.Time      `json:"assignedAt"`
	UnassignedAt         *time.Time     `json:"unassignedAt"`
	UnassignedByID       *uuid.UUID     `json:"unassignedById"`
	UnassignmentReason   *string        `json:"unassignmentReason"`
}

type ConsultantCandidateDTO struct {
	ConsultantID              uuid.UUID  `json:"consultantId"`
	Name                      string     `json:"name"`
	Sector                    *string    `json:"sector"`
	Rating                    float64    `json:"rating"`
	ReviewCount               int        `json:"reviewCount"`
	CurrentLoad               int        `json:"currentLoad"`
	MaxConcurrentApplications int        `json:"maxConcurrentApplications"`
	LastAssignedAt            *time.Time `json:"lastAssignedAt"`
}

// AssignmentStatsDTO reports ledger-derived turnover numbers. Averages cover
// closed entries only.
type AssignmentStatsDTO struct {
	AverageManualDurationSeconds    float64 `json:"averageManualDurationSeconds"`
	AverageAutomaticDurationSeconds float64 `json:"averageAutomaticDurationSeconds"`
}

type WorkloadDTO struct {
	ConsultantID              uuid.UUID               `json:"consultantId"`
	Availability              AvailabilityStatus      `json:"availability"`
	CurrentLoad               int                     `json:"currentLoad"`
	MaxConcurrentApplications int                     `json:"maxConcurrentApplications"`
	ActiveAssignments         []AssignmentLogEntryDTO `json:"activeAssignments"`
}
