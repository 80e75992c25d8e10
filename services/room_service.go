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
	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
)

type RoomService struct {
	applicationRepository shared.ApplicationRepository
	roomRepository        shared.RoomRepository
	fanout                shared.FanoutService
}

func NewRoomService(applicationRepository shared.ApplicationRepository, roomRepository shared.RoomRepository, fanout shared.FanoutService) *RoomService {
	return &RoomService{
		applicationRepository: applicationRepository,
		roomRepository:        roomRepository,
		fanout:                fanout,
	}
}

// PostMessage appends a message row and triggers the fan-out. Only the
// parties of the application may post.
func (s *RoomService) PostMessage(applicationID uuid.UUID, actor shared.Actor, body string) (models.RoomMessage, error) {
	var application models.Application
	var message models.RoomMessage

	err := s.applicationRepository.Transaction(func(tx shared.DB) error {
		var err error
		application, err = s.applicationRepository.ReadForUpdate(tx, applicationID)
		if err != nil {
			return err
		}
		room, err := s.participatingRoom(tx, &application, actor)
		if err != nil {
			return err
		}

		message = models.RoomMessage{
			RoomID:   room.ID,
			AuthorID: actor.ID,
			Body:     body,
		}
		return s.roomRepository.CreateMessage(tx, &message)
	})
	if err != nil {
		return models.RoomMessage{}, err
	}

	s.fanout.MessagePosted(application, actor.ID)
	return message, nil
}

// UploadDocument records a document row and triggers the fan-out. File
// storage itself is an external collaborator; only the reference lands here.
func (s *RoomService) UploadDocument(applicationID uuid.UUID, actor shared.Actor, fileName string) (models.RoomDocument, error) {
	var application models.Application
	var document models.RoomDocument

	err := s.applicationRepository.Transaction(func(tx shared.DB) error {
		var err error
		application, err = s.applicationRepository.ReadForUpdate(tx, applicationID)
		if err != nil {
			return err
		}
		room, err := s.participatingRoom(tx, &application, actor)
		if err != nil {
			return err
		}

		document = models.RoomDocument{
			RoomID:       room.ID,
			UploadedByID: actor.ID,
			FileName:     fileName,
		}
		return s.roomRepository.CreateDocument(tx, &document)
	})
	if err != nil {
		return models.RoomDocument{}, err
	}

	s.fanout.DocumentUploaded(application, actor.ID)
	return document, nil
}

// participatingRoom authorizes the actor against the application and returns
// its room, creating it lazily on first use.
func (s *RoomService) participatingRoom(tx shared.DB, application *models.Application, actor shared.Actor) (models.ApplicationRoom, error) {
	isParty := actor.IsAdmin() || actor.ID == application.OwnerID ||
		(application.AssignedConsultantID != nil && *application.AssignedConsultantID == actor.ID)
	if !isParty {
		return models.ApplicationRoom{}, shared.NewForbidden("only the owner, the assigned consultant or an admin may post to this room")
	}

	room, err := s.roomRepository.EnsureForApplication(tx, application)
	if err != nil {
		return models.ApplicationRoom{}, err
	}
	if room.Status == dtos.RoomStatusArchived {
		return models.ApplicationRoom{}, shared.NewForbidden("the room is archived")
	}
	return room, nil
}
