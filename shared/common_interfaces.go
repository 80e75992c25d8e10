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

package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/utils"
)

type ApplicationRepository interface {
	utils.Repository[uuid.UUID, models.Application, DB]
	// ReadForUpdate locks the application row for the duration of tx -
	// transitions on one application are serialized through this lock.
	ReadForUpdate(tx DB, id uuid.UUID) (models.Application, error)
	ReadWithAssignment(id uuid.UUID) (models.Application, error)
	// NextNumber derives the human-readable sequential number pre-commit.
	NextNumber(tx DB) (string, error)
	ListUnassignedSubmitted() ([]models.Application, error)
}

type AssignmentLogRepository interface {
	// Open appends a new ledger entry. Returns an AssignmentConflict engine
	// error if an open entry already exists for the application.
	Open(tx DB, entry *models.AssignmentLogEntry) error
	// Close stamps the unassignment fields on the open entry of the
	// application. Returns a NoActiveAssignment engine error if none is open.
	Close(tx DB, applicationID uuid.UUID, actorID *uuid.UUID, reason string) (models.AssignmentLogEntry, error)
	FindOpenByApplicationID(tx DB, applicationID uuid.UUID) (models.AssignmentLogEntry, error)
	ActiveFor(consultantID uuid.UUID) ([]models.AssignmentLogEntry, error)
	HistoryFor(applicationID uuid.UUID) ([]models.AssignmentLogEntry, error)
	// CurrentLoad counts open entries whose application is non-terminal.
	CurrentLoad(tx DB, consultantID uuid.UUID) (int, error)
	AverageAssignmentDuration(assignmentType dtos.AssignmentType) (time.Duration, error)
	Transaction(f func(tx DB) error) error
}

type UserRepository interface {
	Read(id uuid.UUID) (models.User, error)
	// ReadForUpdate locks the user row for the duration of tx. Capacity
	// checks and the ledger insert they guard happen under this lock, so
	// concurrent assignments to the same consultant serialize.
	ReadForUpdate(tx DB, id uuid.UUID) (models.User, error)
	Save(tx DB, user *models.User) error
	Create(tx DB, user *models.User) error
	// ListEligibleConsultants returns active, under-capacity consultants of
	// the sector. An empty result is a valid answer, never an error.
	ListEligibleConsultants(sector string, minRating float64) ([]models.ConsultantCandidate, error)
	ListAdmins() ([]models.User, error)
}

type RoomRepository interface {
	FindByApplicationID(tx DB, applicationID uuid.UUID) (models.ApplicationRoom, error)
	// EnsureForApplication lazily creates the 1:1 room. Concurrent callers
	// race on the unique application_id index; the loser re-reads.
	EnsureForApplication(tx DB, application *models.Application) (models.ApplicationRoom, error)
	Save(tx DB, room *models.ApplicationRoom) error
	// Archive soft-deletes the room once its application is terminal.
	Archive(tx DB, roomID uuid.UUID) error
	CreateMessage(tx DB, message *models.RoomMessage) error
	CreateDocument(tx DB, document *models.RoomDocument) error
}

type NotificationRepository interface {
	CreateBatch(tx DB, notifications []models.Notification) error
	ListUndelivered(maxAttempts int, limit int) ([]models.Notification, error)
	MarkSent(tx DB, id uuid.UUID) error
	MarkFailed(tx DB, id uuid.UUID) error
}

type SupportTicketRepository interface {
	utils.Repository[uuid.UUID, models.SupportTicket, DB]
	ReadForUpdate(tx DB, id uuid.UUID) (models.SupportTicket, error)
}

// AssignmentTrigger describes who (or what) requested an assignment.
type AssignmentTrigger struct {
	Type         dtos.AssignmentType
	ConsultantID *uuid.UUID
	// Actor is nil for system-automatic triggers (submit hook, retry daemon).
	Actor    *Actor
	Note     string
	Override bool
}

type CapacityService interface {
	ListEligible(sector string, minRating float64) ([]models.ConsultantCandidate, error)
	Workload(consultantID uuid.UUID) (dtos.WorkloadDTO, error)
	AssignmentStats() (dtos.AssignmentStatsDTO, error)
}

type AssignmentService interface {
	Assign(applicationID uuid.UUID, trigger AssignmentTrigger) (models.Application, error)
	Unassign(applicationID uuid.UUID, actor Actor, reason string) (models.Application, error)
}

// TransitionResult carries the mutated application plus the outcome of a
// synchronous automatic assignment attempt, when the transition triggered one.
type TransitionResult struct {
	Application models.Application
	// AssignmentError is a typed engine error (usually NoEligibleConsultant)
	// that did not fail the transition itself.
	AssignmentError *EngineError
}

type ApplicationService interface {
	// Create opens a new draft application. The sequential number is derived
	// inside the creating transaction, before the insert commits.
	Create(request dtos.ApplicationCreateRequest, actor Actor) (models.Application, error)
}

// RoomService posts collaboration events into an application's room. The
// rich message/document UI is out of scope; these exist to drive the
// activity counters and notifications.
type RoomService interface {
	PostMessage(applicationID uuid.UUID, actor Actor, body string) (models.RoomMessage, error)
	UploadDocument(applicationID uuid.UUID, actor Actor, fileName string) (models.RoomDocument, error)
}

type LifecycleService interface {
	Transition(applicationID uuid.UUID, target dtos.ApplicationStatus, actor Actor) (TransitionResult, error)
	TransitionRoom(applicationID uuid.UUID, target dtos.RoomStatus, actor Actor) (models.ApplicationRoom, error)
	TransitionTicket(ticketID uuid.UUID, target dtos.TicketStatus, actor Actor) (models.SupportTicket, error)
}

// FanoutService updates activity counters and emits notifications after a
// lifecycle event committed. It is fire-and-forget: implementations log
// failures instead of returning them, so a broken notification channel can
// never invalidate a state change.
type FanoutService interface {
	AssignmentChanged(application models.Application, entry models.AssignmentLogEntry, event dtos.ActivityEventType)
	StatusChanged(application models.Application, from, to dtos.ApplicationStatus, actor Actor)
	MessagePosted(application models.Application, authorID uuid.UUID)
	DocumentUploaded(application models.Application, uploaderID uuid.UUID)
}

type TicketService interface {
	Create(request dtos.TicketCreateRequest, actor Actor) (models.SupportTicket, error)
}

// NotificationDeliverer pushes a notification to its external channel
// (mail, webhook, ...). Delivery transports are external collaborators.
type NotificationDeliverer interface {
	Deliver(notification models.Notification) error
}

// AssignmentRetrier is what the retry daemon drives.
type AssignmentRetrier interface {
	RetryUnassigned() error
}

type DaemonRunner interface {
	Start()
}
