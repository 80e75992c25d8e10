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
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
)

type ApplicationService struct {
	applicationRepository shared.ApplicationRepository
}

func NewApplicationService(applicationRepository shared.ApplicationRepository) *ApplicationService {
	return &ApplicationService{applicationRepository: applicationRepository}
}

// Create opens a draft application owned by the calling user. The sequential
// number is drawn from the database sequence inside the same transaction as
// the insert - an explicit derivation step, not an ORM hook.
func (s *ApplicationService) Create(request dtos.ApplicationCreateRequest, actor shared.Actor) (models.Application, error) {
	application := models.Application{
		Status:             dtos.StatusDraft,
		Priority:           request.Priority,
		ProjectTitle:       request.ProjectTitle,
		ProjectDescription: request.ProjectDescription,
		Sector:             request.Sector,
		RequestedAmount:    request.RequestedAmount,
		Currency:           request.Currency,
		OwnerID:            actor.ID,
		IncentiveID:        request.IncentiveID,
	}
	if !application.Priority.Valid() {
		application.Priority = dtos.PriorityMedium
	}

	err := s.applicationRepository.Transaction(func(tx shared.DB) error {
		number, err := s.applicationRepository.NextNumber(tx)
		if err != nil {
			return err
		}
		application.Number = number
		return s.applicationRepository.Create(tx, &application)
	})
	return application, err
}
