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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type TicketCreateRequest struct {
	Subject       string     `json:"subject" validate:"required"`
	Body          string     `json:"body"`
	Priority      Priority   `json:"priority"`
	ApplicationID *uuid.UUID `json:"applicationId"`
	IncentiveID   *uuid.UUID `json:"incentiveId"`
}

type TicketDTO struct {
	ID            uuid.UUID    `json:"id"`
	Subject       string       `json:"subject"`
	Body          string       `json:"body"`
	Status        TicketStatus `json:"status"`
	Priority      Priority     `json:"priority"`
	OpenedByID    uuid.UUID    `json:"openedById"`
	ApplicationID *uuid.UUID   `json:"applicationId"`
	IncentiveID   *uuid.UUID   `json:"incentiveId"`
	ClosedAt      *time.Time   `json:"closedAt"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
