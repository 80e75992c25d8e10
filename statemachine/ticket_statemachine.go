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
	"github.com/incentra-dev/incentra/dtos"
)

// TicketMachine is the support-ticket workflow: open <-> in_progress ->
// closed. The opening user may withdraw their own open ticket; only staff
// close tickets that are being worked on. closed is terminal.
var TicketMachine = &Machine[dtos.TicketStatus]{
	entity: "ticket",
	edges: map[dtos.TicketStatus]map[dtos.TicketStatus]edgePolicy{
		dtos.TicketStatusOpen: {
			dtos.TicketStatusInProgress: roles(dtos.RoleConsultant, dtos.RoleAdmin),
			dtos.TicketStatusClosed:     ownerOr(dtos.RoleConsultant, dtos.RoleAdmin),
		},
		dtos.TicketStatusInProgress: {
			dtos.TicketStatusOpen:   roles(dtos.RoleConsultant, dtos.RoleAdmin),
			dtos.TicketStatusClosed: roles(dtos.RoleConsultant, dtos.RoleAdmin),
		},
	},
}
