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

package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormApplicationRepository struct {
	utils.Repository[uuid.UUID, models.Application, *gorm.DB]
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *gormApplicationRepository {
	return &gormApplicationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Application](db),
	}
}

// ReadForUpdate locks the application row until tx commits. All lifecycle
// transitions and assignment mutations go through this lock, so concurrent
// requests on the same application serialize instead of interleaving.
func (g *gormApplicationRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.Application, error) {
	var app models.Application
	err := g.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&app, "id = ?", id).Error
	return app, err
}

func (g *gormApplicationRepository) ReadWithAssignment(id uuid.UUID) (models.Application, error) {
	var app models.Application
	err := g.db.Preload("Owner").Preload("AssignedConsultant").First(&app, "id = ?", id).Error
	return app, err
}

// NextNumber draws the next value from the application number sequence and
// formats it. The sequence never rolls back, so aborted transactions leave
// gaps in the numbering - that is accepted.
func (g *gormApplicationRepository) NextNumber(tx *gorm.DB) (string, error) {
	var seq int64
	if err := g.GetDB(tx).Raw("SELECT nextval('application_number_seq')").Scan(&seq).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("INC-%d-%06d", time.Now().UTC().Year(), seq), nil
}

// ListUnassignedSubmitted returns applications the retry daemon should pick
// up: submitted or under review, without a consultant.
func (g *gormApplicationRepository) ListUnassignedSubmitted() ([]models.Application, error) {
	var apps []models.Application
	err := g.db.
		Where("assigned_consultant_id IS NULL").
		Where("status IN ?", []dtos.ApplicationStatus{dtos.StatusSubmitted, dtos.StatusUnderReview}).
		Order("submitted_at ASC").
		Find(&apps).Error
	return apps, err
}
