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
package statemachine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
	"github.com/stretchr/testify/assert"
)

func TestRoomMachine(t *testing.T) {
	ownerID := uuid.New()
	owner := shared.Actor{ID: ownerID, Role: dtos.RoleUser}
	consultant := shared.Actor{ID: uuid.New(), Role: dtos.RoleConsultant}

	t.Run("consultant can park the room on waiting_documents and back", func(t *testing.T) {
		assert.NoError(t, ValidateRoomTransition(dtos.RoomStatusActive, dtos.RoomStatusWaitingDocuments, dtos.StatusUnderReview, consultant, ownerID))
		assert.NoError(t, ValidateRoomTransition(dtos.RoomStatusWaitingDocuments, dtos.RoomStatusActive, dtos.StatusUnderReview, consultant, ownerID))
	})

	t.Run("the owning user can reactivate a waiting room", func(t *testing.T) {
		assert.NoError(t, ValidateRoomTransition(dtos.RoomStatusWaitingDocuments, dtos.RoomStatusActive, dtos.StatusUnderReview, owner, ownerID))
	})

	t.Run("the owning user cannot archive", func(t *testing.T) {
		err := ValidateRoomTransition(dtos.RoomStatusActive, dtos.RoomStatusArchived, dtos.StatusCompleted, owner, ownerID)
		assert.True(t, shared.IsKind(err, shared.KindForbidden))
	})

	t.Run("archiving requires a terminal application", func(t *testing.T) {
		err := ValidateRoomTransition(dtos.RoomStatusActive, dtos.RoomStatusArchived, dtos.StatusUnderReview, consultant, ownerID)
		assert.True(t, shared.IsKind(err, shared.KindInvalidTransition))

		for _, appStatus := range []dtos.ApplicationStatus{dtos.StatusCompleted, dtos.StatusRejected, dtos.StatusCancelled} {
			assert.NoError(t, ValidateRoomTransition(dtos.RoomStatusActive, dtos.RoomStatusArchived, appStatus, consultant, ownerID), "application %s", appStatus)
		}
	})

	t.Run("archived has no outgoing edges", func(t *testing.T) {
		assert.Empty(t, RoomMachine.Reachable(dtos.RoomStatusArchived))
	})
}

func TestTicketMachine(t *testing.T) {
	openerID := uuid.New()
	opener := shared.Actor{ID: openerID, Role: dtos.RoleUser}
	stranger := shared.Actor{ID: uuid.New(), Role: dtos.RoleUser}
	consultant := shared.Actor{ID: uuid.New(), Role: dtos.RoleConsultant}

	t.Run("the opening user can withdraw an open ticket", func(t *testing.T) {
		assert.NoError(t, TicketMachine.Validate(dtos.TicketStatusOpen, dtos.TicketStatusClosed, opener, openerID))

		err := TicketMachine.Validate(dtos.TicketStatusOpen, dtos.TicketStatusClosed, stranger, openerID)
		assert.True(t, shared.IsKind(err, shared.KindForbidden))
	})

	t.Run("only staff drive in_progress", func(t *testing.T) {
		assert.NoError(t, TicketMachine.Validate(dtos.TicketStatusOpen, dtos.TicketStatusInProgress, consultant, openerID))
		assert.NoError(t, TicketMachine.Validate(dtos.TicketStatusInProgress, dtos.TicketStatusClosed, consultant, openerID))

		err := TicketMachine.Validate(dtos.TicketStatusInProgress, dtos.TicketStatusClosed, opener, openerID)
		assert.True(t, shared.IsKind(err, shared.KindForbidden))
	})

	t.Run("closed is terminal", func(t *testing.T) {
		assert.Empty(t, TicketMachine.Reachable(dtos.TicketStatusClosed))
	})
}
