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
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/monitoring"
	"github.com/incentra-dev/incentra/shared"
	"github.com/incentra-dev/incentra/utils"
	"gorm.io/datatypes"
)

// FanoutService performs the observational side effects of lifecycle events:
// room activity counters, notification rows and broker messages. Every method
// is fire-and-forget - it runs after the triggering transaction committed and
// must never propagate a failure back into it.
type FanoutService struct {
	roomRepository         shared.RoomRepository
	notificationRepository shared.NotificationRepository
	userRepository         shared.UserRepository
	broker                 shared.PubSubBroker
}

func NewFanoutService(
	roomRepository shared.RoomRepository,
	notificationRepository shared.NotificationRepository,
	userRepository shared.UserRepository,
	broker shared.PubSubBroker,
) *FanoutService {
	return &FanoutService{
		roomRepository:         roomRepository,
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		broker:                 broker,
	}
}

func (s *FanoutService) AssignmentChanged(application models.Application, entry models.AssignmentLogEntry, event dtos.ActivityEventType) {
	monitoring.AssignmentsTotal.WithLabelValues(string(entry.AssignmentType)).Inc()

	s.bumpRoomActivity(application, nil)

	title := fmt.Sprintf("Application %s assigned", application.Number)
	if event == dtos.EventTypeUnassignment {
		title = fmt.Sprintf("Application %s unassigned", application.Number)
	}
	s.notify(application, event, title, []uuid.UUID{application.OwnerID, entry.ConsultantID})

	s.publish(shared.ChannelLifecycleEvents, map[string]any{
		"event":         string(event),
		"applicationId": application.ID.String(),
		"consultantId":  entry.ConsultantID.String(),
	})
	if event == dtos.EventTypeUnassignment {
		// capacity freed - wake up the retry daemon on every instance
		s.publish(shared.ChannelCapacityChanged, map[string]any{
			"consultantId": entry.ConsultantID.String(),
		})
	}
}

func (s *FanoutService) StatusChanged(application models.Application, from, to dtos.ApplicationStatus, actor shared.Actor) {
	monitoring.StatusTransitionsTotal.WithLabelValues(string(to)).Inc()

	s.bumpRoomActivity(application, nil)

	recipients := []uuid.UUID{application.OwnerID}
	if application.AssignedConsultantID != nil {
		recipients = append(recipients, *application.AssignedConsultantID)
	}
	// decisions additionally go to the admins
	if to == dtos.StatusApproved || to == dtos.StatusRejected || to == dtos.StatusCancelled {
		admins, err := s.userRepository.ListAdmins()
		if err != nil {
			monitoring.Alert("fan-out could not list admins", err)
		}
		recipients = append(recipients, utils.Map(admins, func(admin models.User) uuid.UUID { return admin.ID })...)
	}

	title := fmt.Sprintf("Application %s moved from %s to %s", application.Number, from, to)
	s.notify(application, dtos.EventTypeStatusChange, title, recipients)

	s.publish(shared.ChannelLifecycleEvents, map[string]any{
		"event":         string(dtos.EventTypeStatusChange),
		"applicationId": application.ID.String(),
		"from":          string(from),
		"to":            string(to),
	})
	if to.IsTerminal() && application.AssignedConsultantID != nil {
		// a terminal application no longer counts against the consultant's load
		s.publish(shared.ChannelCapacityChanged, map[string]any{
			"consultantId": application.AssignedConsultantID.String(),
		})
	}
}

func (s *FanoutService) MessagePosted(application models.Application, authorID uuid.UUID) {
	s.bumpRoomActivity(application, func(stats *models.RoomStats, now time.Time) {
		stats.MessageCount++
		s.stampPartyActivity(application, authorID, stats, now)
	})

	title := fmt.Sprintf("New message on application %s", application.Number)
	s.notify(application, dtos.EventTypeMessage, title, s.counterparties(application, authorID))
}

func (s *FanoutService) DocumentUploaded(application models.Application, uploaderID uuid.UUID) {
	s.bumpRoomActivity(application, func(stats *models.RoomStats, now time.Time) {
		stats.DocumentCount++
		s.stampPartyActivity(application, uploaderID, stats, now)
	})

	title := fmt.Sprintf("New document on application %s", application.Number)
	s.notify(application, dtos.EventTypeDocument, title, s.counterparties(application, uploaderID))
}

// bumpRoomActivity updates the room's activity timestamp and stats bag. The
// counters are best-effort; the message and document rows stay authoritative.
func (s *FanoutService) bumpRoomActivity(application models.Application, update func(stats *models.RoomStats, now time.Time)) {
	room, err := s.roomRepository.FindByApplicationID(nil, application.ID)
	if err != nil {
		// no room yet means nothing to bump
		return
	}

	now := time.Now()
	room.LastActivityAt = now
	if update != nil {
		stats := room.Stats.Data()
		update(&stats, now)
		room.Stats = datatypes.NewJSONType(stats)
	}
	if err := s.roomRepository.Save(nil, &room); err != nil {
		monitoring.Alert("fan-out could not update room activity", err)
	}
}

func (s *FanoutService) stampPartyActivity(application models.Application, actorID uuid.UUID, stats *models.RoomStats, now time.Time) {
	if actorID == application.OwnerID {
		stats.LastOwnerActivityAt = &now
		return
	}
	stats.LastConsultantActivityAt = &now
	// first consultant reaction after owner activity closes the response gap
	if stats.LastOwnerActivityAt != nil && stats.ResponseTimeSeconds == nil {
		stats.ResponseTimeSeconds = utils.Ptr(int64(now.Sub(*stats.LastOwnerActivityAt).Seconds()))
	}
}

// counterparties returns the application parties except the acting one.
func (s *FanoutService) counterparties(application models.Application, actorID uuid.UUID) []uuid.UUID {
	parties := []uuid.UUID{application.OwnerID}
	if application.AssignedConsultantID != nil {
		parties = append(parties, *application.AssignedConsultantID)
	}
	return utils.Filter(parties, func(id uuid.UUID) bool { return id != actorID })
}

func (s *FanoutService) notify(application models.Application, event dtos.ActivityEventType, title string, recipients []uuid.UUID) {
	seen := make(map[uuid.UUID]bool, len(recipients))
	notifications := make([]models.Notification, 0, len(recipients))
	for _, recipient := range recipients {
		if seen[recipient] {
			continue
		}
		seen[recipient] = true
		notifications = append(notifications, models.Notification{
			RecipientID:   recipient,
			EventType:     event,
			ApplicationID: utils.Ptr(application.ID),
			Title:         title,
			State:         dtos.NotificationStatePending,
		})
	}
	if err := s.notificationRepository.CreateBatch(nil, notifications); err != nil {
		monitoring.Alert("fan-out could not persist notifications", err)
	}
}

func (s *FanoutService) publish(channel shared.PubSubChannel, payload map[string]any) {
	if s.broker == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.broker.Publish(ctx, shared.NewSimplePubSubMessage(channel, payload)); err != nil {
		monitoring.Alert("fan-out could not publish event", err)
	}
}
