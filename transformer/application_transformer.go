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
	"github.com/incentra-dev/incentra/shared"
	"github.com/incentra-dev/incentra/utils"
)

func ApplicationModelToDTO(application models.Application) dtos.ApplicationDTO {
	return dtos.ApplicationDTO{
		ID:                 application.ID,
		Number:             application.Number,
		Status:             application.Status,
		Priority:           application.Priority,
		ProjectTitle:       application.ProjectTitle,
		ProjectDescription: application.ProjectDescription,
		Sector:             application.Sector,
		RequestedAmount:    application.RequestedAmount,
		ApprovedAmount:     application.ApprovedAmount,
		Currency:           application.Currency,
		OwnerID:            application.OwnerID,
		IncentiveID:        application.IncentiveID,

		AssignedConsultantID: application.AssignedConsultantID,
		AssignmentType:       application.AssignmentType,
		AssignedAt:           application.AssignedAt,
		AssignmentNote:       application.AssignmentNote,

		SubmittedAt: application.SubmittedAt,
		ReviewedAt:  application.ReviewedAt,
		ApprovedAt:  application.ApprovedAt,
		RejectedAt:  application.RejectedAt,
		CompletedAt: application.CompletedAt,
		CreatedAt:   application.CreatedAt,
		UpdatedAt:   application.UpdatedAt,
	}
}

func ApplicationModelsToDTOs(applications []models.Application) []dtos.ApplicationDTO {
	return utils.Map(applications, ApplicationModelToDTO)
}

// TransitionResultToDTO flattens the assignment outcome into the response:
// the transition succeeded either way, the assignment field just tells the
// client what happened to the automatic matching.
func TransitionResultToDTO(result shared.TransitionResult) dtos.TransitionResultDTO {
	dto := dtos.TransitionResultDTO{
		Application: ApplicationModelToDTO(result.Application),
	}
	if result.AssignmentError != nil {
		msg := result.AssignmentError.Message
		dto.Assignment = &msg
	}
	return dto
}
