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
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
	"github.com/incentra-dev/incentra/utils"
)

// AssignmentService is the matcher plus the write path of the ledger. Every
// mutation runs in one transaction that holds the application row lock and,
// while a capacity check is pending, the consultant row lock.
type AssignmentService struct {
	applicationRepository   shared.ApplicationRepository
	assignmentLogRepository shared.AssignmentLogRepository
	userRepository          shared.UserRepository
	roomRepository          shared.RoomRepository
	fanout                  shared.FanoutService
	config                  shared.EngineConfig
}

func NewAssignmentService(
	applicationRepository shared.ApplicationRepository,
	assignmentLogRepository shared.AssignmentLogRepository,
	userRepository shared.UserRepository,
	roomRepository shared.RoomRepository,
	fanout shared.FanoutService,
	config shared.EngineConfig,
) *AssignmentService {
	return &AssignmentService{
		applicationRepository:   applicationRepository,
		assignmentLogRepository: assignmentLogRepository,
		userRepository:          userRepository,
		roomRepository:          roomRepository,
		fanout:                  fanout,
		config:                  config,
	}
}

// Assign routes an application to a consultant. The manual path (explicit
// consultant) is admin-only; the automatic path ranks eligible candidates
// and walks down the ranking until one passes the in-transaction capacity
// recheck. Fan-out runs after the transaction committed.
func (s *AssignmentService) Assign(applicationID uuid.UUID, trigger shared.AssignmentTrigger) (models.Application, error) {
	var application models.Application
	var entry models.AssignmentLogEntry

	err := s.assignmentLogRepository.Transaction(func(tx shared.DB) error {
		var err error
		application, err = s.applicationRepository.ReadForUpdate(tx, applicationID)
		if err != nil {
			return err
		}
		if application.Status.IsTerminal() {
			return shared.NewConsultantUnavailable(fmt.Sprintf("application %s is %s and takes no assignments", application.Number, application.Status))
		}

		if trigger.Type == dtos.AssignmentTypeManual {
			entry, err = s.assignManual(tx, &application, trigger)
		} else {
			entry, err = s.assignAutomatic(tx, &application, trigger)
		}
		return err
	})
	if err != nil {
		return models.Application{}, err
	}

	s.fanout.AssignmentChanged(application, entry, dtos.EventTypeAssignment)
	return application, nil
}

func (s *AssignmentService) assignManual(tx shared.DB, application *models.Application, trigger shared.AssignmentTrigger) (models.AssignmentLogEntry, error) {
	if trigger.Actor == nil || !trigger.Actor.IsAdmin() {
		return models.AssignmentLogEntry{}, shared.NewForbidden("only admins may assign a named consultant")
	}

	consultant, err := s.userRepository.ReadForUpdate(tx, *trigger.ConsultantID)
	if err != nil {
		return models.AssignmentLogEntry{}, err
	}
	if !consultant.IsConsultant() {
		return models.AssignmentLogEntry{}, shared.NewConsultantUnavailable(fmt.Sprintf("user %s is not a consultant", consultant.ID))
	}
	if consultant.Availability != dtos.AvailabilityActive {
		return models.AssignmentLogEntry{}, shared.NewConsultantUnavailable(fmt.Sprintf("consultant %s is %s", consultant.ID, consultant.Availability))
	}

	override := false
	atCapacity, err := s.isAtCapacity(tx, consultant)
	if err != nil {
		return models.AssignmentLogEntry{}, err
	}
	if atCapacity {
		if !trigger.Override {
			return models.AssignmentLogEntry{}, shared.NewConsultantUnavailable(fmt.Sprintf("consultant %s is at capacity", consultant.ID))
		}
		// admin status was checked above - record the deliberate override
		override = true
	}

	return s.commitAssignment(tx, application, consultant, trigger, override)
}

func (s *AssignmentService) assignAutomatic(tx shared.DB, application *models.Application, trigger shared.AssignmentTrigger) (models.AssignmentLogEntry, error) {
	candidates, err := s.userRepository.ListEligibleConsultants(application.Sector, s.config.MinRating)
	if err != nil {
		return models.AssignmentLogEntry{}, err
	}
	if len(candidates) == 0 {
		return models.AssignmentLogEntry{}, shared.NewNoEligibleConsultant(application.Sector)
	}

	for _, candidate := range rankCandidates(candidates, s.config, time.Now()) {
		consultant, err := s.userRepository.ReadForUpdate(tx, candidate.ConsultantID)
		if err != nil {
			return models.AssignmentLogEntry{}, err
		}

		// the eligibility snapshot may be stale - recheck under the row lock
		// and fall back to the next-ranked candidate on failure
		if consultant.Availability != dtos.AvailabilityActive {
			continue
		}
		atCapacity, err := s.isAtCapacity(tx, consultant)
		if err != nil {
			return models.AssignmentLogEntry{}, err
		}
		if atCapacity {
			continue
		}

		return s.commitAssignment(tx, application, consultant, trigger, false)
	}

	return models.AssignmentLogEntry{}, shared.NewNoEligibleConsultant(application.Sector)
}

// commitAssignment closes any prior open entry, appends the new one and
// updates the denormalized pointers. Side-effect order matters: the ledger
// write is the atomic check against concurrent assignment, everything after
// it only follows the ledger.
func (s *AssignmentService) commitAssignment(tx shared.DB, application *models.Application, consultant models.User, trigger shared.AssignmentTrigger, override bool) (models.AssignmentLogEntry, error) {
	var previousConsultantID *uuid.UUID
	if application.IsAssigned() {
		closed, err := s.assignmentLogRepository.Close(tx, application.ID, actorID(trigger.Actor), dtos.UnassignmentReasonReassigned)
		if err != nil {
			return models.AssignmentLogEntry{}, err
		}
		previousConsultantID = utils.Ptr(closed.ConsultantID)
	}

	entry := models.AssignmentLogEntry{
		ApplicationID:        application.ID,
		ConsultantID:         consultant.ID,
		AssignedByID:         actorID(trigger.Actor),
		AssignmentType:       trigger.Type,
		Sector:               application.Sector,
		PreviousConsultantID: previousConsultantID,
		CapacityOverride:     override,
		Note:                 utils.EmptyThenNil(trigger.Note),
	}
	if err := s.assignmentLogRepository.Open(tx, &entry); err != nil {
		return models.AssignmentLogEntry{}, err
	}

	now := time.Now()
	application.AssignedConsultantID = utils.Ptr(consultant.ID)
	application.AssignmentType = utils.Ptr(trigger.Type)
	application.AssignedAt = &now
	application.AssignmentNote = utils.EmptyThenNil(trigger.Note)
	if err := s.applicationRepository.Save(tx, application); err != nil {
		return models.AssignmentLogEntry{}, err
	}

	consultant.LastAssignedAt = &now
	if err := s.userRepository.Save(tx, &consultant); err != nil {
		return models.AssignmentLogEntry{}, err
	}

	if _, err := s.roomRepository.EnsureForApplication(tx, application); err != nil {
		return models.AssignmentLogEntry{}, err
	}

	return entry, nil
}

// Unassign closes the open ledger entry and frees the consultant's capacity
// immediately. Only an admin or the assigned consultant themself may do it.
func (s *AssignmentService) Unassign(applicationID uuid.UUID, actor shared.Actor, reason string) (models.Application, error) {
	var application models.Application
	var entry models.AssignmentLogEntry

	err := s.assignmentLogRepository.Transaction(func(tx shared.DB) error {
		var err error
		application, err = s.applicationRepository.ReadForUpdate(tx, applicationID)
		if err != nil {
			return err
		}

		if !actor.IsAdmin() {
			if application.AssignedConsultantID == nil || !actor.IsConsultant() || *application.AssignedConsultantID != actor.ID {
				return shared.NewForbidden("only admins or the assigned consultant may unassign")
			}
		}

		entry, err = s.assignmentLogRepository.Close(tx, applicationID, utils.Ptr(actor.ID), reason)
		if err != nil {
			return err
		}

		application.ClearAssignment()
		return s.applicationRepository.Save(tx, &application)
	})
	if err != nil {
		return models.Application{}, err
	}

	s.fanout.AssignmentChanged(application, entry, dtos.EventTypeUnassignment)
	return application, nil
}

func (s *AssignmentService) isAtCapacity(tx shared.DB, consultant models.User) (bool, error) {
	load, err := s.assignmentLogRepository.CurrentLoad(tx, consultant.ID)
	if err != nil {
		return false, err
	}
	max := consultant.MaxConcurrentApplications
	if max == 0 {
		max = s.config.DefaultMaxConcurrentApplications
	}
	return load >= max, nil
}

func actorID(actor *shared.Actor) *uuid.UUID {
	if actor == nil {
		return nil
	}
	return utils.Ptr(actor.ID)
}
