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
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
)

type TicketService struct {
	ticketRepository      shared.SupportTicketRepository
	applicationRepository shared.ApplicationRepository
}

func NewTicketService(ticketRepository shared.SupportTicketRepository, applicationRepository shared.ApplicationRepository) *TicketService {
	return &TicketService{
		ticketRepository:      ticketRepository,
		applicationRepository: applicationRepository,
	}
}

// Create opens a ticket in the open state. A referenced application is
// validated for existence but no further coupling happens - tickets run
// their own lifecycle.
func (s *TicketService) Create(request dtos.TicketCreateRequest, actor shared.Actor) (models.SupportTicket, error) {
	if request.ApplicationID != nil {
		if _, err := s.applicationRepository.Read(*request.ApplicationID); err != nil {
			return models.SupportTicket{}, err
		}
	}

	ticket := models.SupportTicket{
		Subject:       request.Subject,
		Body:          request.Body,
		Status:        dtos.TicketStatusOpen,
		Priority:      request.Priority,
		OpenedByID:    actor.ID,
		ApplicationID: request.ApplicationID,
		IncentiveID:   request.IncentiveID,
	}
	if !ticket.Priority.Valid() {
		ticket.Priority = dtos.PriorityMedium
	}

	err := s.ticketRepository.Create(nil, &ticket)
	return ticket, err
}
