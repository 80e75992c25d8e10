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
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/mocks"
	"github.com/incentra-dev/incentra/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type applicationControllerMocks struct {
	applications   *mocks.ApplicationRepository
	assignmentLogs *mocks.AssignmentLogRepository
	applicationSvc *mocks.ApplicationService
	lifecycle      *mocks.LifecycleService
	assignments    *mocks.AssignmentService
	rooms          *mocks.RoomService
}

func newApplicationController(t *testing.T) (*ApplicationController, applicationControllerMocks) {
	m := applicationControllerMocks{
		applications:   mocks.NewApplicationRepository(t),
		assignmentLogs: mocks.NewAssignmentLogRepository(t),
		applicationSvc: mocks.NewApplicationService(t),
		lifecycle:      mocks.NewLifecycleService(t),
		assignments:    mocks.NewAssignmentService(t),
		rooms:          mocks.NewRoomService(t),
	}
	controller := NewApplicationController(m.applications, m.assignmentLogs, m.applicationSvc, m.lifecycle, m.assignments, m.rooms)
	return controller, m
}

func jsonContext(t *testing.T, body any, actor shared.Actor, applicationID string) (shared.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	b, err := json.Marshal(body)
	assert.Nil(t, err)

	req := httptest.NewRequest("POST", "/", bytes.NewBuffer(b))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if applicationID != "" {
		ctx.SetParamNames("applicationID")
		ctx.SetParamValues(applicationID)
	}
	shared.SetActor(ctx, actor)
	return ctx, rec
}

func TestApplicationControllerCreate(t *testing.T) {
	actor := shared.Actor{ID: uuid.New(), Role: dtos.RoleUser}

	t.Run("creates a draft", func(t *testing.T) {
		controller, m := newApplicationController(t)
		request := dtos.ApplicationCreateRequest{
			ProjectTitle:    "Solar rollout",
			Sector:          "energy",
			RequestedAmount: 100000,
			Currency:        "EUR",
		}
		application := models.Application{Number: "INC-2025-000001", Status: dtos.StatusDraft}
		application.ID = uuid.New()

		m.applicationSvc.On("Create", request, actor).Return(application, nil)

		ctx, rec := jsonContext(t, request, actor, "")
		err := controller.Create(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 201, rec.Code)

		var dto dtos.ApplicationDTO
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, "INC-2025-000001", dto.Number)
	})

	t.Run("rejects a request without a sector", func(t *testing.T) {
		controller, _ := newApplicationController(t)
		request := dtos.ApplicationCreateRequest{
			ProjectTitle:    "Solar rollout",
			RequestedAmount: 100000,
			Currency:        "EUR",
		}

		ctx, _ := jsonContext(t, request, actor, "")
		err := controller.Create(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestApplicationControllerChangeStatus(t *testing.T) {
	actor := shared.Actor{ID: uuid.New(), Role: dtos.RoleUser}

	t.Run("maps an invalid transition to 409", func(t *testing.T) {
		controller, m := newApplicationController(t)
		applicationID := uuid.New()

		m.lifecycle.On("Transition", applicationID, dtos.StatusApproved, actor).
			Return(shared.TransitionResult{}, shared.NewInvalidTransition("application", "draft", "approved"))

		ctx, _ := jsonContext(t, dtos.StatusChangeRequest{Status: "approved"}, actor, applicationID.String())
		err := controller.ChangeStatus(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("maps forbidden to 403", func(t *testing.T) {
		controller, m := newApplicationController(t)
		applicationID := uuid.New()

		m.lifecycle.On("Transition", applicationID, dtos.StatusSubmitted, actor).
			Return(shared.TransitionResult{}, shared.NewForbidden("not yours"))

		ctx, _ := jsonContext(t, dtos.StatusChangeRequest{Status: "submitted"}, actor, applicationID.String())
		err := controller.ChangeStatus(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 403, httpErr.Code)
	})

	t.Run("reports the failed automatic match in the response body", func(t *testing.T) {
		controller, m := newApplicationController(t)
		applicationID := uuid.New()
		application := models.Application{Status: dtos.StatusSubmitted}
		application.ID = applicationID

		m.lifecycle.On("Transition", applicationID, dtos.StatusSubmitted, actor).
			Return(shared.TransitionResult{
				Application:     application,
				AssignmentError: shared.NewNoEligibleConsultant("mining"),
			}, nil)

		ctx, rec := jsonContext(t, dtos.StatusChangeRequest{Status: "submitted"}, actor, applicationID.String())
		err := controller.ChangeStatus(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)

		var dto dtos.TransitionResultDTO
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.NotNil(t, dto.Assignment)
		assert.Equal(t, dtos.StatusSubmitted, dto.Application.Status)
	})
}

func TestApplicationControllerAssign(t *testing.T) {
	admin := shared.Actor{ID: uuid.New(), Role: dtos.RoleAdmin}

	t.Run("a named consultant selects the manual path", func(t *testing.T) {
		controller, m := newApplicationController(t)
		applicationID := uuid.New()
		consultantID := uuid.New()
		application := models.Application{Status: dtos.StatusSubmitted}
		application.ID = applicationID

		m.assignments.On("Assign", applicationID, mock.MatchedBy(func(trigger shared.AssignmentTrigger) bool {
			return trigger.Type == dtos.AssignmentTypeManual && *trigger.ConsultantID == consultantID
		})).Return(application, nil)

		ctx, rec := jsonContext(t, dtos.AssignRequest{ConsultantID: &consultantID}, admin, applicationID.String())
		err := controller.Assign(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("no consultant selects the automatic path", func(t *testing.T) {
		controller, m := newApplicationController(t)
		applicationID := uuid.New()
		application := models.Application{Status: dtos.StatusSubmitted}
		application.ID = applicationID

		m.assignments.On("Assign", applicationID, mock.MatchedBy(func(trigger shared.AssignmentTrigger) bool {
			return trigger.Type == dtos.AssignmentTypeAutomatic && trigger.ConsultantID == nil
		})).Return(application, nil)

		ctx, rec := jsonContext(t, dtos.AssignRequest{}, admin, applicationID.String())
		err := controller.Assign(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("maps an assignment conflict to 409", func(t *testing.T) {
		controller, m := newApplicationController(t)
		applicationID := uuid.New()

		m.assignments.On("Assign", applicationID, mock.Anything).
			Return(models.Application{}, shared.NewAssignmentConflict(nil))

		ctx, _ := jsonContext(t, dtos.AssignRequest{}, admin, applicationID.String())
		err := controller.Assign(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 409, httpErr.Code)
	})
}

func TestApplicationControllerUnassign(t *testing.T) {
	admin := shared.Actor{ID: uuid.New(), Role: dtos.RoleAdmin}

	t.Run("maps a missing assignment to 404", func(t *testing.T) {
		controller, m := newApplicationController(t)
		applicationID := uuid.New()

		m.assignments.On("Unassign", applicationID, admin, "done").
			Return(models.Application{}, shared.NewNoActiveAssignment())

		ctx, _ := jsonContext(t, dtos.UnassignRequest{Reason: "done"}, admin, applicationID.String())
		err := controller.Unassign(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 404, httpErr.Code)
	})

	t.Run("requires a reason", func(t *testing.T) {
		controller, _ := newApplicationController(t)
		applicationID := uuid.New()

		ctx, _ := jsonContext(t, dtos.UnassignRequest{}, admin, applicationID.String())
		err := controller.Unassign(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}
