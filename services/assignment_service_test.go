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

package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/mocks"
	"github.com/incentra-dev/incentra/shared"
	"github.com/incentra-dev/incentra/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type assignmentMocks struct {
	applications   *mocks.ApplicationRepository
	assignmentLogs *mocks.AssignmentLogRepository
	users          *mocks.UserRepository
	rooms          *mocks.RoomRepository
	fanout         *mocks.FanoutService
}

func newAssignmentService(t *testing.T, config shared.EngineConfig) (*AssignmentService, assignmentMocks) {
	m := assignmentMocks{
		applications:   mocks.NewApplicationRepository(t),
		assignmentLogs: mocks.NewAssignmentLogRepository(t),
		users:          mocks.NewUserRepository(t),
		rooms:          mocks.NewRoomRepository(t),
		fanout:         mocks.NewFanoutService(t),
	}
	service := NewAssignmentService(m.applications, m.assignmentLogs, m.users, m.rooms, m.fanout, config)
	return service, m
}

func passthroughTx(m *mocks.AssignmentLogRepository) {
	m.On("Transaction", mock.Anything).Return(func(fn func(shared.DB) error) error {
		return fn(nil)
	})
}

func submittedApplication(ownerID uuid.UUID) models.Application {
	application := models.Application{
		Number: "INC-2025-000042",
		Status: dtos.StatusSubmitted,
		Sector: "energy",
	}
	application.ID = uuid.New()
	application.OwnerID = ownerID
	return application
}

func activeConsultant(max int) models.User {
	consultant := models.User{
		Role:                      dtos.RoleConsultant,
		Availability:              dtos.AvailabilityActive,
		MaxConcurrentApplications: max,
		Rating:                    4.0,
	}
	consultant.ID = uuid.New()
	return consultant
}

func TestAssignManual(t *testing.T) {
	admin := shared.Actor{ID: uuid.New(), Role: dtos.RoleAdmin}
	config := shared.EngineConfig{DefaultMaxConcurrentApplications: 10, RatingWeight: 1.0}

	t.Run("admin assigns a named consultant", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		application := submittedApplication(uuid.New())
		consultant := activeConsultant(5)

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.users.On("ReadForUpdate", mock.Anything, consultant.ID).Return(consultant, nil)
		m.assignmentLogs.On("CurrentLoad", mock.Anything, consultant.ID).Return(2, nil)
		m.assignmentLogs.On("Open", mock.Anything, mock.Anything).Return(nil)
		m.applications.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.users.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.rooms.On("EnsureForApplication", mock.Anything, mock.Anything).Return(models.ApplicationRoom{}, nil)
		m.fanout.On("AssignmentChanged", mock.Anything, mock.Anything, dtos.EventTypeAssignment).Return()

		result, err := service.Assign(application.ID, shared.AssignmentTrigger{
			Type:         dtos.AssignmentTypeManual,
			ConsultantID: utils.Ptr(consultant.ID),
			Actor:        &admin,
		})

		assert.NoError(t, err)
		assert.Equal(t, consultant.ID, *result.AssignedConsultantID)
		assert.Equal(t, dtos.AssignmentTypeManual, *result.AssignmentType)
		assert.NotNil(t, result.AssignedAt)
	})

	t.Run("non-admin may not pick a consultant", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		application := submittedApplication(uuid.New())
		consultantID := uuid.New()

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)

		_, err := service.Assign(application.ID, shared.AssignmentTrigger{
			Type:         dtos.AssignmentTypeManual,
			ConsultantID: utils.Ptr(consultantID),
			Actor:        &shared.Actor{ID: uuid.New(), Role: dtos.RoleConsultant},
		})

		assert.True(t, shared.IsKind(err, shared.KindForbidden))
	})

	t.Run("consultant at capacity is rejected without override", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		application := submittedApplication(uuid.New())
		consultant := activeConsultant(3)

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.users.On("ReadForUpdate", mock.Anything, consultant.ID).Return(consultant, nil)
		m.assignmentLogs.On("CurrentLoad", mock.Anything, consultant.ID).Return(3, nil)

		_, err := service.Assign(application.ID, shared.AssignmentTrigger{
			Type:         dtos.AssignmentTypeManual,
			ConsultantID: utils.Ptr(consultant.ID),
			Actor:        &admin,
		})

		assert.True(t, shared.IsKind(err, shared.KindConsultantUnavailable))
	})

	t.Run("admin override assigns past capacity and records it", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		application := submittedApplication(uuid.New())
		consultant := activeConsultant(3)

		var opened models.AssignmentLogEntry
		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.users.On("ReadForUpdate", mock.Anything, consultant.ID).Return(consultant, nil)
		m.assignmentLogs.On("CurrentLoad", mock.Anything, consultant.ID).Return(3, nil)
		m.assignmentLogs.On("Open", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			opened = *args.Get(1).(*models.AssignmentLogEntry)
		}).Return(nil)
		m.applications.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.users.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.rooms.On("EnsureForApplication", mock.Anything, mock.Anything).Return(models.ApplicationRoom{}, nil)
		m.fanout.On("AssignmentChanged", mock.Anything, mock.Anything, dtos.EventTypeAssignment).Return()

		_, err := service.Assign(application.ID, shared.AssignmentTrigger{
			Type:         dtos.AssignmentTypeManual,
			ConsultantID: utils.Ptr(consultant.ID),
			Actor:        &admin,
			Override:     true,
		})

		assert.NoError(t, err)
		assert.True(t, opened.CapacityOverride)
	})

	t.Run("terminal application takes no assignment", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		application := submittedApplication(uuid.New())
		application.Status = dtos.StatusCompleted

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)

		_, err := service.Assign(application.ID, shared.AssignmentTrigger{
			Type:         dtos.AssignmentTypeManual,
			ConsultantID: utils.Ptr(uuid.New()),
			Actor:        &admin,
		})

		assert.True(t, shared.IsKind(err, shared.KindConsultantUnavailable))
	})

	t.Run("reassignment closes the previous ledger entry first", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		previousConsultantID := uuid.New()
		application := submittedApplication(uuid.New())
		application.AssignedConsultantID = utils.Ptr(previousConsultantID)
		consultant := activeConsultant(5)

		var opened models.AssignmentLogEntry
		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.users.On("ReadForUpdate", mock.Anything, consultant.ID).Return(consultant, nil)
		m.assignmentLogs.On("CurrentLoad", mock.Anything, consultant.ID).Return(0, nil)
		m.assignmentLogs.On("Close", mock.Anything, application.ID, mock.Anything, dtos.UnassignmentReasonReassigned).
			Return(models.AssignmentLogEntry{ConsultantID: previousConsultantID}, nil)
		m.assignmentLogs.On("Open", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			opened = *args.Get(1).(*models.AssignmentLogEntry)
		}).Return(nil)
		m.applications.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.users.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.rooms.On("EnsureForApplication", mock.Anything, mock.Anything).Return(models.ApplicationRoom{}, nil)
		m.fanout.On("AssignmentChanged", mock.Anything, mock.Anything, dtos.EventTypeAssignment).Return()

		_, err := service.Assign(application.ID, shared.AssignmentTrigger{
			Type:         dtos.AssignmentTypeManual,
			ConsultantID: utils.Ptr(consultant.ID),
			Actor:        &admin,
		})

		assert.NoError(t, err)
		assert.Equal(t, previousConsultantID, *opened.PreviousConsultantID)
	})
}

func TestAssignAutomatic(t *testing.T) {
	config := shared.EngineConfig{DefaultMaxConcurrentApplications: 10, RatingWeight: 1.0}

	t.Run("picks the least loaded candidate", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		application := submittedApplication(uuid.New())
		busy := activeConsultant(10)
		idle := activeConsultant(10)

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.users.On("ListEligibleConsultants", "energy", 0.0).Return([]models.ConsultantCandidate{
			{ConsultantID: busy.ID, CurrentLoad: 4, Rating: 5.0},
			{ConsultantID: idle.ID, CurrentLoad: 1, Rating: 3.0},
		}, nil)
		m.users.On("ReadForUpdate", mock.Anything, idle.ID).Return(idle, nil)
		m.assignmentLogs.On("CurrentLoad", mock.Anything, idle.ID).Return(1, nil)
		m.assignmentLogs.On("Open", mock.Anything, mock.Anything).Return(nil)
		m.applications.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.users.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.rooms.On("EnsureForApplication", mock.Anything, mock.Anything).Return(models.ApplicationRoom{}, nil)
		m.fanout.On("AssignmentChanged", mock.Anything, mock.Anything, dtos.EventTypeAssignment).Return()

		result, err := service.Assign(application.ID, shared.AssignmentTrigger{Type: dtos.AssignmentTypeAutomatic})

		assert.NoError(t, err)
		assert.Equal(t, idle.ID, *result.AssignedConsultantID)
		assert.Equal(t, dtos.AssignmentTypeAutomatic, *result.AssignmentType)
	})

	t.Run("falls back to the next candidate when the snapshot went stale", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		application := submittedApplication(uuid.New())
		filledUp := activeConsultant(2)
		fallback := activeConsultant(10)

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.users.On("ListEligibleConsultants", "energy", 0.0).Return([]models.ConsultantCandidate{
			{ConsultantID: filledUp.ID, CurrentLoad: 1, Rating: 5.0},
			{ConsultantID: fallback.ID, CurrentLoad: 3, Rating: 4.0},
		}, nil)
		// the directory said load 1, but under the row lock they are full
		m.users.On("ReadForUpdate", mock.Anything, filledUp.ID).Return(filledUp, nil)
		m.assignmentLogs.On("CurrentLoad", mock.Anything, filledUp.ID).Return(2, nil)
		m.users.On("ReadForUpdate", mock.Anything, fallback.ID).Return(fallback, nil)
		m.assignmentLogs.On("CurrentLoad", mock.Anything, fallback.ID).Return(3, nil)
		m.assignmentLogs.On("Open", mock.Anything, mock.Anything).Return(nil)
		m.applications.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.users.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.rooms.On("EnsureForApplication", mock.Anything, mock.Anything).Return(models.ApplicationRoom{}, nil)
		m.fanout.On("AssignmentChanged", mock.Anything, mock.Anything, dtos.EventTypeAssignment).Return()

		result, err := service.Assign(application.ID, shared.AssignmentTrigger{Type: dtos.AssignmentTypeAutomatic})

		assert.NoError(t, err)
		assert.Equal(t, fallback.ID, *result.AssignedConsultantID)
	})

	t.Run("no candidates yields no_eligible_consultant", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		application := submittedApplication(uuid.New())

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.users.On("ListEligibleConsultants", "energy", 0.0).Return(nil, nil)

		_, err := service.Assign(application.ID, shared.AssignmentTrigger{Type: dtos.AssignmentTypeAutomatic})

		assert.True(t, shared.IsKind(err, shared.KindNoEligibleConsultant))
	})

	t.Run("exhausting all candidates yields no_eligible_consultant", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		application := submittedApplication(uuid.New())
		paused := activeConsultant(10)
		paused.Availability = dtos.AvailabilityOnLeave

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.users.On("ListEligibleConsultants", "energy", 0.0).Return([]models.ConsultantCandidate{
			{ConsultantID: paused.ID, CurrentLoad: 0, Rating: 5.0},
		}, nil)
		m.users.On("ReadForUpdate", mock.Anything, paused.ID).Return(paused, nil)

		_, err := service.Assign(application.ID, shared.AssignmentTrigger{Type: dtos.AssignmentTypeAutomatic})

		assert.True(t, shared.IsKind(err, shared.KindNoEligibleConsultant))
	})
}

func TestUnassign(t *testing.T) {
	config := shared.EngineConfig{DefaultMaxConcurrentApplications: 10}

	t.Run("admin unassigns and the pointer is cleared", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		admin := shared.Actor{ID: uuid.New(), Role: dtos.RoleAdmin}
		consultantID := uuid.New()
		application := submittedApplication(uuid.New())
		application.AssignedConsultantID = utils.Ptr(consultantID)

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.assignmentLogs.On("Close", mock.Anything, application.ID, utils.Ptr(admin.ID), "workload rebalancing").
			Return(models.AssignmentLogEntry{ConsultantID: consultantID}, nil)
		m.applications.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.fanout.On("AssignmentChanged", mock.Anything, mock.Anything, dtos.EventTypeUnassignment).Return()

		result, err := service.Unassign(application.ID, admin, "workload rebalancing")

		assert.NoError(t, err)
		assert.Nil(t, result.AssignedConsultantID)
		assert.Nil(t, result.AssignedAt)
	})

	t.Run("the assigned consultant may unassign themself", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		consultant := shared.Actor{ID: uuid.New(), Role: dtos.RoleConsultant}
		application := submittedApplication(uuid.New())
		application.AssignedConsultantID = utils.Ptr(consultant.ID)

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.assignmentLogs.On("Close", mock.Anything, application.ID, utils.Ptr(consultant.ID), "conflict of interest").
			Return(models.AssignmentLogEntry{ConsultantID: consultant.ID}, nil)
		m.applications.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.fanout.On("AssignmentChanged", mock.Anything, mock.Anything, dtos.EventTypeUnassignment).Return()

		_, err := service.Unassign(application.ID, consultant, "conflict of interest")

		assert.NoError(t, err)
	})

	t.Run("an uninvolved consultant is forbidden", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		application := submittedApplication(uuid.New())
		application.AssignedConsultantID = utils.Ptr(uuid.New())

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)

		_, err := service.Unassign(application.ID, shared.Actor{ID: uuid.New(), Role: dtos.RoleConsultant}, "nope")

		assert.True(t, shared.IsKind(err, shared.KindForbidden))
	})

	t.Run("unassigning twice yields no_active_assignment", func(t *testing.T) {
		service, m := newAssignmentService(t, config)
		admin := shared.Actor{ID: uuid.New(), Role: dtos.RoleAdmin}
		application := submittedApplication(uuid.New())

		passthroughTx(m.assignmentLogs)
		m.applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		m.assignmentLogs.On("Close", mock.Anything, application.ID, utils.Ptr(admin.ID), "done").
			Return(models.AssignmentLogEntry{}, shared.NewNoActiveAssignment())

		_, err := service.Unassign(application.ID, admin, "done")

		assert.True(t, shared.IsKind(err, shared.KindNoActiveAssignment))
	})
}
