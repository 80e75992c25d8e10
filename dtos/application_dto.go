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

type ApplicationCreateRequest struct {
	ProjectTitle       string     `json:"projectTitle" validate:"required"`
	ProjectDescription string     `json:"projectDescription"`
	Sector             string     `json:"sector" validate:"required"`
	IncentiveID        *uuid.UUID `json:"incentiveId"`
	RequestedAmount    int64      `json:"requestedAmount" validate:"gte=0"`
	Currency           string     `json:"currency" validate:"required,len=3"`
	Priority           Priority   `json:"priority"`
}

type StatusChangeRequest struct {
	Status string `json:"status" validate:"required"`
}

type AssignRequest struct {
	// ConsultantID selects the manual path. Absent means automatic matching.
	ConsultantID *uuid.UUID `json:"consultantId"`
	Note         string     `json:"note"`
	// Override lets an admin exceed the consultant's capacity limit.
	Override bool `json:"override"`
}

type UnassignRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type MessageCreateRequest struct {
	Body string `json:"body" validate:"required"`
}

type DocumentCreateRequest struct {
	FileName string `json:"fileName" validate:"required"`
}

type ApplicationDTO struct {
	ID                 uuid.UUID         `json:"id"`
	Number             string            `json:"number"`
	Status             ApplicationStatus `json:"status"`
	Priority           Priority          `json:"priority"`
	ProjectTitle       string            `json:"projectTitle"`
	ProjectDescription string            `json:"projectDescription"`
	Sector             string            `json:"sector"`
	RequestedAmount    int64             `json:"requestedAmount"`
	ApprovedAmount     *int64            `json:"approvedAmount"`
	Currency           string            `json:"currency"`
	OwnerID            uuid.UUID         `json:"ownerId"`
	IncentiveID        *uuid.UUID        `json:"incentiveId"`

	AssignedConsultantID *uuid.UUID      `json:"assignedConsultantId"`
	AssignmentType       *AssignmentType `json:"assignmentType"`
	AssignedAt           *time.Time      `json:"assignedAt"`
	AssignmentNote       *string         `json:"assignmentNote"`

	SubmittedAt *time.Time `json:"submittedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt"`
	ApprovedAt  *time.Time `json:"approvedAt"`
	RejectedAt  *time.Time `json:"rejectedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TransitionResultDTO is returned by every status-changing endpoint. Assignment
// carries the outcome of a synchronous automatic assignment attempt, when one
// was triggered by the transition.
type TransitionResultDTO struct {
	Application ApplicationDTO `json:"application"`
	Assignment  *string        `json:"assignment,omitempty"`
}
