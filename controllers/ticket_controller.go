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

package controllers

import (
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
	"github.com/incentra-dev/incentra/transformer"
	"github.com/labstack/echo/v4"
)

type TicketController struct {
	ticketRepository shared.SupportTicketRepository
	ticketService    shared.TicketService
	lifecycleService shared.LifecycleService
}

func NewTicketController(ticketRepository shared.SupportTicketRepository, ticketService shared.TicketService, lifecycleService shared.LifecycleService) *TicketController {
	return &TicketController{
		ticketRepository: ticketRepository,
		ticketService:    ticketService,
		lifecycleService: lifecycleService,
	}
}

func (c *TicketController) Create(ctx shared.Context) error {
	var req dtos.TicketCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	ticket, err := c.ticketService.Create(req, shared.GetActor(ctx))
	if err != nil {
		return echo.NewHTTPError(500, "could not create ticket").WithInternal(err)
	}

	return ctx.JSON(201, transformer.TicketModelToDTO(ticket))
}

func (c *TicketController) Read(ctx shared.Context) error {
	ticketID, err := shared.GetTicketID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	ticket, err := c.ticketRepository.Read(ticketID)
	if err != nil {
		return echo.NewHTTPError(404, "ticket not found").WithInternal(err)
	}

	return ctx.JSON(200, transformer.TicketModelToDTO(ticket))
}

func (c *TicketController) ChangeStatus(ctx shared.Context) error {
	ticketID, err := shared.GetTicketID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req dtos.StatusChangeRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	ticket, err := c.lifecycleService.TransitionTicket(ticketID, dtos.TicketStatus(req.Status), shared.GetActor(ctx))
	if err != nil {
		return asHTTPError(err)
	}

	return ctx.JSON(200, transformer.TicketModelToDTO(ticket))
}
