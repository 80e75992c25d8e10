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
	"github.com/incentra-dev/incentra/transformer"
)

// CapacityService is the read side of the capacity directory. It never
// mutates state; every number it reports is derived from the ledger.
type CapacityService struct {
	userRepository          shared.UserRepository
	assignmentLogRepository shared.AssignmentLogRepository
}

func NewCapacityService(userRepository shared.UserRepository, assignmentLogRepository shared.AssignmentLogRepository) *CapacityService {
	return &CapacityService{
		userRepository:          userRepository,
		assignmentLogRepository: assignmentLogRepository,
	}
}

// ListEligible returns the eligible candidates of a sector. An empty slice
// is a valid answer, not an error - callers treat it as "no automatic match".
func (s *CapacityService) ListEligible(sector string, minRating float64) ([]models.ConsultantCandidate, error) {
	return s.userRepository.ListEligibleConsultants(sector, minRating)
}

func (s *CapacityService) Workload(consultantID uuid.UUID) (dtos.WorkloadDTO, error) {
	consultant, err := s.userRepository.Read(consultantID)
	if err != nil {
		return dtos.WorkloadDTO{}, err
	}

	active, err := s.assignmentLogRepository.ActiveFor(consultantID)
	if err != nil {
		return dtos.WorkloadDTO{}, err
	}

	return dtos.WorkloadDTO{
		ConsultantID:              consultant.ID,
		Availability:              consultant.Availability,
		CurrentLoad:               len(active),
		MaxConcurrentApplications: consultant.MaxConcurrentApplications,
		ActiveAssignments:         transformer.AssignmentLogEntryModelsToDTOs(active),
	}, nil
}

// AssignmentStats derives turnover reporting from the closed ledger entries.
func (s *CapacityService) AssignmentStats() (dtos.AssignmentStatsDTO, error) {
	manual, err := s.assignmentLogRepository.AverageAssignmentDuration(dtos.AssignmentTypeManual)
	if err != nil {
		return dtos.AssignmentStatsDTO{}, err
	}
	automatic, err := s.assignmentLogRepository.AverageAssignmentDuration(dtos.AssignmentTypeAutomatic)
	if err != nil {
		return dtos.AssignmentStatsDTO{}, err
	}
	return dtos.AssignmentStatsDTO{
		AverageManualDurationSeconds:    manual.Seconds(),
		AverageAutomaticDurationSeconds: automatic.Seconds(),
	}, nil
}
