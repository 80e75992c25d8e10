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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
	"github.com/incentra-dev/incentra/statemachine"
)

// LifecycleService drives all three state machines. Every transition is
// validate -> mutate -> fan-out, in that order, with the mutation inside a
// transaction that holds the entity's row lock.
type LifecycleService struct {
	applicationRepository shared.ApplicationRepository
	roomRepository        shared.RoomRepository
	ticketRepository      shared.SupportTicketRepository
	assignmentService     shared.AssignmentService
	fanout                shared.FanoutService
}

func NewLifecycleService(
	applicationRepository shared.ApplicationRepository,
	roomRepository shared.RoomRepository,
	ticketRepository shared.SupportTicketRepository,
	assignmentService shared.AssignmentService,
	fanout shared.FanoutService,
) *LifecycleService {
	return &LifecycleService{
		applicationRepository: applicationRepository,
		roomRepository:        roomRepository,
		ticketRepository:      ticketRepository,
		assignmentService:     assignmentService,
		fanout:                fanout,
	}
}

// Transition moves an application to the target status. Entering submitted
// without a consultant triggers the automatic matcher synchronously; its
// failure is reported in the result but never fails the transition itself.
func (s *LifecycleService) Transition(applicationID uuid.UUID, target dtos.ApplicationStatus, actor shared.Actor) (shared.TransitionResult, error) {
	var application models.Application
	var from dtos.ApplicationStatus

	err := s.applicationRepository.Transaction(func(tx shared.DB) error {
		var err error
		application, err = s.applicationRepository.ReadForUpdate(tx, applicationID)
		if err != nil {
			return err
		}

		from = application.Status
		if !target.Valid() {
			return shared.NewInvalidTransition("application", string(from), string(target))
		}
		if err := statemachine.ApplicationMachine.Validate(from, target, actor, application.OwnerID); err != nil {
			return err
		}

		application.Status = target
		statemachine.StampTimestamps(&application, target, time.Now())
		return s.applicationRepository.Save(tx, &application)
	})
	if err != nil {
		return shared.TransitionResult{}, err
	}

	result := shared.TransitionResult{Application: application}

	if target == dtos.StatusSubmitted && !application.IsAssigned() {
		assigned, err := s.assignmentService.Assign(applicationID, shared.AssignmentTrigger{Type: dtos.AssignmentTypeAutomatic})
		switch {
		case err == nil:
			result.Application = assigned
		case shared.AsEngineError(err) != nil:
			// no candidate or a lost race - the application stays submitted
			// and unassigned, the retry daemon picks it up
			result.AssignmentError = shared.AsEngineError(err)
		default:
			slog.Error("automatic assignment after submit failed", "applicationID", applicationID, "err", err)
		}
	}

	s.fanout.StatusChanged(result.Application, from, target, actor)
	return result, nil
}

// TransitionRoom moves the application's room. The archive edge additionally
// requires the application to be terminal.
func (s *LifecycleService) TransitionRoom(applicationID uuid.UUID, target dtos.RoomStatus, actor shared.Actor) (models.ApplicationRoom, error) {
	var room models.ApplicationRoom

	err := s.applicationRepository.Transaction(func(tx shared.DB) error {
		application, err := s.applicationRepository.ReadForUpdate(tx, applicationID)
		if err != nil {
			return err
		}
		room, err = s.roomRepository.FindByApplicationID(tx, applicationID)
		if err != nil {
			return err
		}

		from := room.Status
		if !target.Valid() {
			return shared.NewInvalidTransition("room", string(from), string(target))
		}
		if err := statemachine.ValidateRoomTransition(from, target, application.Status, actor, application.OwnerID); err != nil {
			return err
		}

		room.Status = target
		if err := s.roomRepository.Save(tx, &room); err != nil {
			return err
		}
		if target == dtos.RoomStatusArchived {
			return s.roomRepository.Archive(tx, room.ID)
		}
		return nil
	})
	return room, err
}

// TransitionTicket moves a support ticket through its workflow.
func (s *LifecycleService) TransitionTicket(ticketID uuid.UUID, target dtos.TicketStatus, actor shared.Actor) (models.SupportTicket, error) {
	var ticket models.SupportTicket

	err := s.ticketRepository.Transaction(func(tx shared.DB) error {
		var err error
		ticket, err = s.ticketRepository.ReadForUpdate(tx, ticketID)
		if err != nil {
			return err
		}

		from := ticket.Status
		if !target.Valid() {
			return shared.NewInvalidTransition("ticket", string(from), string(target))
		}
		if err := statemachine.TicketMachine.Validate(from, target, actor, ticket.OpenedByID); err != nil {
			return err
		}

		ticket.Status = target
		if target == dtos.TicketStatusClosed {
			now := time.Now()
			ticket.ClosedAt = &now
		} else {
			ticket.ClosedAt = nil
		}
		return s.ticketRepository.Save(tx, &ticket)
	})
	return ticket, err
}
