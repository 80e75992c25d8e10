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
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/mocks"
	"github.com/stretchr/testify/assert"
)

func TestWorkload(t *testing.T) {
	t.Run("derives the current load from the open ledger entries", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		assignmentLogRepository := mocks.NewAssignmentLogRepository(t)
		service := NewCapacityService(userRepository, assignmentLogRepository)

		consultant := models.User{
			Role:                      dtos.RoleConsultant,
			Availability:              dtos.AvailabilityActive,
			MaxConcurrentApplications: 5,
		}
		consultant.ID = uuid.New()

		entries := []models.AssignmentLogEntry{
			{ApplicationID: uuid.New(), ConsultantID: consultant.ID},
			{ApplicationID: uuid.New(), ConsultantID: consultant.ID},
		}
		userRepository.On("Read", consultant.ID).Return(consultant, nil)
		assignmentLogRepository.On("ActiveFor", consultant.ID).Return(entries, nil)

		workload, err := service.Workload(consultant.ID)

		assert.Nil(t, err)
		assert.Equal(t, 2, workload.CurrentLoad)
		assert.Equal(t, 5, workload.MaxConcurrentApplications)
		assert.Len(t, workload.ActiveAssignments, 2)
	})
}

func TestAssignmentStats(t *testing.T) {
	t.Run("reports averages per assignment type", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		assignmentLogRepository := mocks.NewAssignmentLogRepository(t)
		service := NewCapacityService(userRepository, assignmentLogRepository)

		assignmentLogRepository.On("AverageAssignmentDuration", dtos.AssignmentTypeManual).Return(90*time.Minute, nil)
		assignmentLogRepository.On("AverageAssignmentDuration", dtos.AssignmentTypeAutomatic).Return(30*time.Minute, nil)

		stats, err := service.AssignmentStats()

		assert.Nil(t, err)
		assert.Equal(t, (90 * time.Minute).Seconds(), stats.AverageManualDurationSeconds)
		assert.Equal(t, (30 * time.Minute).Seconds(), stats.AverageAutomaticDurationSeconds)
	})
}
