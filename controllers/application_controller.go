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

type ApplicationController struct {
	applicationRepository   shared.ApplicationRepository
	assignmentLogRepository shared.AssignmentLogRepository
	applicationService      shared.ApplicationService
	lifecycleService        shared.LifecycleService
	assignmentService       shared.AssignmentService
	roomService             shared.RoomService
}

func NewApplicationController(
	applicationRepository shared.ApplicationRepository,
	assignmentLogRepository shared.AssignmentLogRepository,
	applicationService shared.ApplicationService,
	lifecycleService shared.LifecycleService,
	assignmentService shared.AssignmentService,
	roomService shared.RoomService,
) *ApplicationController {
	return &ApplicationController{
		applicationRepository:   applicationRepository,
		assignmentLogRepository: assignmentLogRepository,
		applicationService:      applicationService,
		lifecycleService:        lifecycleService,
		assignmentService:       assignmentService,
		roomService:             roomService,
	}
}

func (c *ApplicationController) Create(ctx shared.Context) error {
	var req dtos.ApplicationCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	application, err := c.applicationService.Create(req, shared.GetActor(ctx))
	if err != nil {
		return echo.NewHTTPError(500, "could not create application").WithInternal(err)
	}

	return ctx.JSON(201, transformer.ApplicationModelToDTO(application))
}

func (c *ApplicationController) Read(ctx shared.Context) error {
	applicationID, err := shared.GetApplicationID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	application, err := c.applicationRepository.ReadWithAssignment(applicationID)
	if err != nil {
		return echo.NewHTTPError(404, "application not found").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ApplicationModelToDTO(application))
}

// ChangeStatus drives the application state machine. The response carries the
// assignment outcome when entering submitted triggered the automatic matcher.
func (c *ApplicationController) ChangeStatus(ctx shared.Context) error {
	applicationID, err := shared.GetApplicationID(ctx)
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

	result, err := c.lifecycleService.Transition(applicationID, dtos.ApplicationStatus(req.Status), shared.GetActor(ctx))
	if err != nil {
		return asHTTPError(err)
	}

	return ctx.JSON(200, transformer.TransitionResultToDTO(result))
}

// Submit is a shortcut for the draft -> submitted transition.
func (c *ApplicationController) Submit(ctx shared.Context) error {
	applicationID, err := shared.GetApplicationID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	result, err := c.lifecycleService.Transition(applicationID, dtos.StatusSubmitted, shared.GetActor(ctx))
	if err != nil {
		return asHTTPError(err)
	}

	return ctx.JSON(200, transformer.TransitionResultToDTO(result))
}

func (c *ApplicationController) Assign(ctx shared.Context) error {
	applicationID, err := shared.GetApplicationID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req dtos.AssignRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	actor := shared.GetActor(ctx)
	trigger := shared.AssignmentTrigger{
		Type:         dtos.AssignmentTypeAutomatic,
		Actor:        &actor,
		Note:         req.Note,
		Override:     req.Override,
		ConsultantID: req.ConsultantID,
	}
	if req.ConsultantID != nil {
		trigger.Type = dtos.AssignmentTypeManual
	}

	application, err := c.assignmentService.Assign(applicationID, trigger)
	if err != nil {
		return asHTTPError(err)
	}

	return ctx.JSON(200, transformer.ApplicationModelToDTO(application))
}

func (c *ApplicationController) Unassign(ctx shared.Context) error {
	applicationID, err := shared.GetApplicationID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req dtos.UnassignRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	application, err := c.assignmentService.Unassign(applicationID, shared.GetActor(ctx), req.Reason)
	if err != nil {
		return asHTTPError(err)
	}

	return ctx.JSON(200, transformer.ApplicationModelToDTO(application))
}

// AssignmentHistory returns the full append-only ledger of the application,
// most recent entry first.
func (c *ApplicationController) AssignmentHistory(ctx shared.Context) error {
	applicationID, err := shared.GetApplicationID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	entries, err := c.assignmentLogRepository.HistoryFor(applicationID)
	if err != nil {
		return echo.NewHTTPError(500, "could not read assignment history").WithInternal(err)
	}

	return ctx.JSON(200, transformer.AssignmentLogEntryModelsToDTOs(entries))
}

func (c *ApplicationController) PostMessage(ctx shared.Context) error {
	applicationID, err := shared.GetApplicationID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req dtos.MessageCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	message, err := c.roomService.PostMessage(applicationID, shared.GetActor(ctx), req.Body)
	if err != nil {
		return asHTTPError(err)
	}

	return ctx.JSON(201, message)
}

func (c *ApplicationController) UploadDocument(ctx shared.Context) error {
	applicationID, err := shared.GetApplicationID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req dtos.DocumentCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	document, err := c.roomService.UploadDocument(applicationID, shared.GetActor(ctx), req.FileName)
	if err != nil {
		return asHTTPError(err)
	}

	return ctx.JSON(201, document)
}

func (c *ApplicationController) ChangeRoomStatus(ctx shared.Context) error {
	applicationID, err := shared.GetApplicationID(ctx)
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

	room, err := c.lifecycleService.TransitionRoom(applicationID, dtos.RoomStatus(req.Status), shared.GetActor(ctx))
	if err != nil {
		return asHTTPError(err)
	}

	return ctx.JSON(200, room)
}
