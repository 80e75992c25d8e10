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
	"gorm.io/gorm"
)

// Application is the unit of work: one company's request for one incentive,
// tracked through the approval workflow. The assigned consultant pointer is
// denormalized from the ledger - it is non-nil iff an open ledger entry
// exists for this application.
type Application struct {
	Model
	// Number is the human-readable sequential identifier (INC-<year>-<seq>).
	// It is derived explicitly before the insert commits, not by a DB hook.
	Number   string                 `json:"number" gorm:"type:text;uniqueIndex;not null;"`
	Status   dtos.ApplicationStatus `json:"status" gorm:"type:text;not null;default:'draft';"`
	Priority dtos.Priority          `json:"priority" gorm:"type:text;not null;default:'medium';"`

	ProjectTitle       string `json:"projectTitle" gorm:"type:text;not null;"`
	ProjectDescription string `json:"projectDescription" gorm:"type:text;"`
	Sector             string `json:"sector" gorm:"type:text;not null;index;"`

	// amounts are stored in minor units of Currency
	RequestedAmount int64  `json:"requestedAmount" gorm:"not null;default:0;"`
	ApprovedAmount  *int64 `json:"approvedAmount"`
	Currency        string `json:"currency" gorm:"type:text;not null;default:'EUR';"`

	OwnerID     uuid.UUID  `json:"ownerId" gorm:"type:uuid;not null;index;"`
	Owner       User       `json:"-" gorm:"foreignKey:OwnerID;references:ID;"`
	IncentiveID *uuid.UUID `json:"incentiveId" gorm:"type:uuid;"`
	ReviewerID  *uuid.UUID `json:"reviewerId" gorm:"type:uuid;"`
	ApproverID  *uuid.UUID `json:"approverId" gorm:"type:uuid;"`

	AssignedConsultantID *uuid.UUID           `json:"assignedConsultantId" gorm:"type:uuid;index;"`
	AssignedConsultant   *User                `json:"-" gorm:"foreignKey:AssignedConsultantID;references:ID;"`
	AssignmentType       *dtos.AssignmentType `json:"assignmentType" gorm:"type:text;"`
	AssignedAt           *time.Time           `json:"assignedAt" gorm:"type:timestamp with time zone;"`
	AssignmentNote       *string              `json:"assignmentNote" gorm:"type:text;"`
	// post-hoc consultant review by the application owner
	AssignmentRating *int    `json:"assignmentRating"`
	AssignmentReview *string `json:"assignmentReview" gorm:"type:text;"`

	SubmittedAt *time.Time `json:"submittedAt" gorm:"type:timestamp with time zone;"`
	ReviewedAt  *time.Time `json:"reviewedAt" gorm:"type:timestamp with time zone;"`
	ApprovedAt  *time.Time `json:"approvedAt" gorm:"type:timestamp with time zone;"`
	RejectedAt  *time.Time `json:"rejectedAt" gorm:"type:timestamp with time zone;"`
	CancelledAt *time.Time `json:"cancelledAt" gorm:"type:timestamp with time zone;"`
	CompletedAt *time.Time `json:"completedAt" gorm:"type:timestamp with time zone;"`

	// applications are never hard-deleted once terminal
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index;"`
}

func (m Application) TableName() string {
	return "applications"
}

func (m *Application) IsAssigned() bool {
	return m.AssignedConsultantID != nil
}

// ClearAssignment drops the denormalized consultant pointer and its metadata.
// The ledger entry is closed separately - the ledger stays the source of truth.
func (m *Application) ClearAssignment() {
	m.AssignedConsultantID = nil
	m.AssignmentType = nil
	m.AssignedAt = nil
	m.AssignmentNote = nil
}
