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

package transformer

import (
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/utils"
)

func AssignmentLogEntryModelToDTO(entry models.AssignmentLogEntry) dtos.AssignmentLogEntryDTO {
	return dtos.AssignmentLogEntryDTO{
		ID:                   entry.ID,
		ApplicationID:        entry.ApplicationID,
		ConsultantID:         entry.ConsultantID,
		AssignedByID:         entry.AssignedByID,
		AssignmentType:       entry.AssignmentType,
		Sector:               entry.Sector,
		PreviousConsultantID: entry.PreviousConsultantID,
		CapacityOverride:     entry.CapacityOverride,
		Note:                 entry.Note,
		AssignedAt:           entry.CreatedAt,
		UnassignedAt:         entry.UnassignedAt,
		UnassignedByID:       entry.UnassignedByID,
		UnassignmentReason:   entry.UnassignmentReason,
	}
}

func AssignmentLogEntryModelsToDTOs(entries []models.AssignmentLogEntry) []dtos.AssignmentLogEntryDTO {
	return utils.Map(entries, AssignmentLogEntryModelToDTO)
}

func ConsultantCandidateToDTO(candidate models.ConsultantCandidate) dtos.ConsultantCandidateDTO {
	return dtos.ConsultantCandidateDTO{
		ConsultantID:              candidate.ConsultantID,
		Name:                      candidate.Name,
		Sector:                    candidate.Sector,
		Rating:                    candidate.Rating,
		ReviewCount:               candidate.ReviewCount,
		CurrentLoad:               candidate.CurrentLoad,
		MaxConcurrentApplications: candidate.MaxConcurrentApplications,
		LastAssignedAt:            candidate.LastAssignedAt,
	}
}

func ConsultantCandidatesToDTOs(candidates []models.ConsultantCandidate) []dtos.ConsultantCandidateDTO {
	return utils.Map(candidates, ConsultantCandidateToDTO)
}
