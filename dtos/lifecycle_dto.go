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

// ApplicationStatus is the formal workflow status of an incentive application.
type ApplicationStatus string

const (
	StatusDraft                  ApplicationStatus = "draft"
	StatusSubmitted              ApplicationStatus = "submitted"
	StatusUnderReview            ApplicationStatus = "under_review"
	StatusAdditionalInfoRequired ApplicationStatus = "additional_info_required"
	StatusApproved               ApplicationStatus = "approved"
	StatusRejected               ApplicationStatus = "rejected"
	StatusCancelled              ApplicationStatus = "cancelled"
	StatusCompleted              ApplicationStatus = "completed"
)

// IsTerminal reports whether no further transition may leave this status.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusCancelled
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusAdditionalInfoRequired,
		StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// RoomStatus is the operational status of an application's collaboration room.
// It carries the application vocabulary plus room-only operational states.
type RoomStatus string

const (
	RoomStatusActive           RoomStatus = "active"
	RoomStatusWaitingDocuments RoomStatus = "waiting_documents"
	RoomStatusArchived         RoomStatus = "archived"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusActive, RoomStatusWaitingDocuments, RoomStatusArchived:
		return true
	}
	return ApplicationStatus(s).Valid()
}

// TicketStatus is the status of a support ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

func (s TicketStatus) Valid() bool {
	return s == TicketStatusOpen || s == TicketStatusInProgress || s == TicketStatusClosed
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh || p == PriorityUrgent
}

type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleConsultant UserRole = "consultant"
	RoleAdmin      UserRole = "admin"
)

// AvailabilityStatus is the consultant's self-reported availability.
type AvailabilityStatus string

const (
	AvailabilityActive   AvailabilityStatus = "active"
	AvailabilityInactive AvailabilityStatus = "inactive"
	AvailabilityBusy     AvailabilityStatus = "busy"
	AvailabilityOnLeave  AvailabilityStatus = "on_leave"
)

type AssignmentType string

const (
	AssignmentTypeManual    AssignmentType = "manual"
	AssignmentTypeAutomatic AssignmentType = "automatic"
)

// UnassignmentReasonReassigned is stamped on a ledger entry that was closed
// because a new assignment replaced it. Other reasons are free text.
const UnassignmentReasonReassigned = "reassigned"

// ActivityEventType names the lifecycle events the fan-out reacts to.
type ActivityEventType string

const (
	EventTypeAssignment   ActivityEventType = "assignment"
	EventTypeUnassignment ActivityEventType = "unassignment"
	EventTypeStatusChange ActivityEventType = "status_change"
	EventTypeMessage      ActivityEventType = "message"
	EventTypeDocument     ActivityEventType = "document"
)

// NotificationState tracks out-of-band delivery of a notification record.
type NotificationState string

const (
	NotificationStatePending NotificationState = "pending"
	NotificationStateSent    NotificationState = "sent"
	NotificationStateFailed  NotificationState = "failed"
)
