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
	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
)

// RoomMachine is the operational machine of the collaboration room. It runs
// in parallel to the application workflow; a consultant can park a room on
// waiting_documents without touching the formal application status.
var RoomMachine = &Machine[dtos.RoomStatus]{
	entity: "room",
	edges: map[dtos.RoomStatus]map[dtos.RoomStatus]edgePolicy{
		dtos.RoomStatusActive: {
			dtos.RoomStatusWaitingDocuments: roles(dtos.RoleConsultant, dtos.RoleAdmin),
			dtos.RoomStatusArchived:         roles(dtos.RoleConsultant, dtos.RoleAdmin),
		},
		dtos.RoomStatusWaitingDocuments: {
			dtos.RoomStatusActive:   ownerOr(dtos.RoleConsultant, dtos.RoleAdmin),
			dtos.RoomStatusArchived: roles(dtos.RoleConsultant, dtos.RoleAdmin),
		},
	},
}

// ValidateRoomTransition wraps the edge table with the archive guard: a room
// may only reach archived once its application is terminal.
func ValidateRoomTransition(from, to dtos.RoomStatus, applicationStatus dtos.ApplicationStatus, actor shared.Actor, ownerID uuid.UUID) error {
	if err := RoomMachine.CanTransition(from, to); err != nil {
		return err
	}
	if to == dtos.RoomStatusArchived && !applicationStatus.IsTerminal() {
		return shared.NewInvalidTransition("room", string(from), string(to))
	}
	return RoomMachine.Authorize(from, to, actor, ownerID)
}
