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
	"fmt"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/dtos"
)

// Actor is the authenticated caller of an engine operation, resolved by the
// session middleware. Authentication itself is an external collaborator.
type Actor struct {
	ID   uuid.UUID
	Role dtos.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == dtos.RoleAdmin
}

func (a Actor) IsConsultant() bool {
	return a.Role == dtos.RoleConsultant
}

func SetActor(ctx Context, actor Actor) {
	ctx.Set("actor", actor)
}

func GetActor(ctx Context) Actor {
	return ctx.Get("actor").(Actor)
}

func GetApplicationID(ctx Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("applicationID"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid application id: %w", err)
	}
	return id, nil
}

func GetConsultantID(ctx Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("consultantID"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid consultant id: %w", err)
	}
	return id, nil
}

func GetTicketID(ctx Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("ticketID"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid ticket id: %w", err)
	}
	return id, nil
}
