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
	"testing"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/mocks"
	"github.com/incentra-dev/incentra/shared"
	"github.com/incentra-dev/incentra/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRoomService(t *testing.T) (*RoomService, *mocks.ApplicationRepository, *mocks.RoomRepository, *mocks.FanoutService) {
	applications := mocks.NewApplicationRepository(t)
	rooms := mocks.NewRoomRepository(t)
	fanout := mocks.NewFanoutService(t)
	return NewRoomService(applications, rooms, fanout), applications, rooms, fanout
}

func TestPostMessage(t *testing.T) {
	t.Run("the owner posts into a lazily created room", func(t *testing.T) {
		service, applications, rooms, fanout := newRoomService(t)
		owner := shared.Actor{ID: uuid.New(), Role: dtos.RoleUser}
		application := models.Application{Status: dtos.StatusUnderReview}
		application.ID = uuid.New()
		application.OwnerID = owner.ID
		room := models.ApplicationRoom{ApplicationID: application.ID, Status: dtos.RoomStatusActive}
		room.ID = uuid.New()

		applicationTx(applications)
		applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		rooms.On("EnsureForApplication", mock.Anything, mock.Anything).Return(room, nil)
		rooms.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)
		fanout.On("MessagePosted", mock.Anything, owner.ID).Return()

		message, err := service.PostMessage(application.ID, owner, "any news?")

		assert.NoError(t, err)
		assert.Equal(t, room.ID, message.RoomID)
		assert.Equal(t, owner.ID, message.AuthorID)
	})

	t.Run("a stranger is forbidden", func(t *testing.T) {
		service, applications, _, _ := newRoomService(t)
		application := models.Application{Status: dtos.StatusUnderReview}
		application.ID = uuid.New()
		application.OwnerID = uuid.New()
		application.AssignedConsultantID = utils.Ptr(uuid.New())

		applicationTx(applications)
		applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)

		_, err := service.PostMessage(application.ID, shared.Actor{ID: uuid.New(), Role: dtos.RoleUser}, "hi")

		assert.True(t, shared.IsKind(err, shared.KindForbidden))
	})

	t.Run("an archived room takes no posts", func(t *testing.T) {
		service, applications, rooms, _ := newRoomService(t)
		owner := shared.Actor{ID: uuid.New(), Role: dtos.RoleUser}
		application := models.Application{Status: dtos.StatusCompleted}
		application.ID = uuid.New()
		application.OwnerID = owner.ID
		room := models.ApplicationRoom{ApplicationID: application.ID, Status: dtos.RoomStatusArchived}

		applicationTx(applications)
		applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		rooms.On("EnsureForApplication", mock.Anything, mock.Anything).Return(room, nil)

		_, err := service.PostMessage(application.ID, owner, "too late")

		assert.True(t, shared.IsKind(err, shared.KindForbidden))
	})
}

func TestUploadDocument(t *testing.T) {
	t.Run("the assigned consultant uploads", func(t *testing.T) {
		service, applications, rooms, fanout := newRoomService(t)
		consultant := shared.Actor{ID: uuid.New(), Role: dtos.RoleConsultant}
		application := models.Application{Status: dtos.StatusUnderReview}
		application.ID = uuid.New()
		application.OwnerID = uuid.New()
		application.AssignedConsultantID = utils.Ptr(consultant.ID)
		room := models.ApplicationRoom{ApplicationID: application.ID, Status: dtos.RoomStatusActive}
		room.ID = uuid.New()

		applicationTx(applications)
		applications.On("ReadForUpdate", mock.Anything, application.ID).Return(application, nil)
		rooms.On("EnsureForApplication", mock.Anything, mock.Anything).Return(room, nil)
		rooms.On("CreateDocument", mock.Anything, mock.Anything).Return(nil)
		fanout.On("DocumentUploaded", mock.Anything, consultant.ID).Return()

		document, err := service.UploadDocument(application.ID, consultant, "assessment.pdf")

		assert.NoError(t, err)
		assert.Equal(t, "assessment.pdf", document.FileName)
		assert.Equal(t, consultant.ID, document.UploadedByID)
	})
}
