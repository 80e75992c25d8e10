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

// User is any portal account. Consultant-specific columns are only
// meaningful when Role is consultant.
type User struct {
	Model
	Name  string        `json:"name" gorm:"type:text;not null;"`
	Email string        `json:"email" gorm:"type:text;uniqueIndex;not null;"`
	Role  dtos.UserRole `json:"role" gorm:"type:text;not null;default:'user';"`

	Availability              dtos.AvailabilityStatus `json:"availability" gorm:"type:text;not null;default:'inactive';"`
	Sector                    *string                 `json:"sector" gorm:"type:text;"`
	MaxConcurrentApplications int                     `json:"maxConcurrentApplications" gorm:"default:0;not null;"`
	Rating                    float64                 `json:"rating" gorm:"type:decimal(3,2);default:0;not null;"`
	ReviewCount               int                     `json:"reviewCount" gorm:"default:0;not null;"`
	// LastAssignedAt feeds the rotation term of the ranking.
	LastAssignedAt *time.Time `json:"lastAssignedAt" gorm:"type:timestamp with time zone;"`
}

func (m User) TableName() string {
	return "users"
}

func (m *User) IsConsultant() bool {
	return m.Role == dtos.RoleConsultant
}

// ConsultantCandidate is the read projection the capacity directory returns.
// CurrentLoad is derived from open ledger entries whose application is not in
// a terminal status - it is never stored.
type ConsultantCandidate struct {
	ConsultantID              uuid.UUID  `json:"consultantId" gorm:"column:consultant_id"`
	Name                      string     `json:"name" gorm:"column:name"`
	Sector                    *string    `json:"sector" gorm:"column:sector"`
	Rating                    float64    `json:"rating" gorm:"column:rating"`
	ReviewCount               int        `json:"reviewCount" gorm:"column:review_count"`
	CurrentLoad               int        `json:"currentLoad" gorm:"column:current_load"`
	MaxConcurrentApplications int        `json:"maxConcurrentApplications" gorm:"column:max_concurrent_applications"`
	LastAssignedAt            *time.Time `json:"lastAssignedAt" gorm:"column:last_assigned_at"`
}
