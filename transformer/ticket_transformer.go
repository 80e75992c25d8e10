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

package transformer

import (
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/utils"
)

func TicketModelToDTO(ticket models.SupportTicket) dtos.TicketDTO {
	return dtos.TicketDTO{
		ID:            ticket.ID,
		Subject:       ticket.Subject,
		Body:          ticket.Body,
		Status:        ticket.Status,
		Priority:      ticket.Priority,
		OpenedByID:    ticket.OpenedByID,
		ApplicationID: ticket.ApplicationID,
		IncentiveID:   ticket.IncentiveID,
		ClosedAt:      ticket.ClosedAt,
		CreatedAt:     ticket.CreatedAt,
		UpdatedAt:     ticket.UpdatedAt,
	}
}

func TicketModelsToDTOs(tickets []models.SupportTicket) []dtos.TicketDTO {
	return utils.Map(tickets, TicketModelToDTO)
}
