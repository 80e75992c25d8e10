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
	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormUserRepository struct {
	utils.Repository[uuid.UUID, models.User, *gorm.DB]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *gormUserRepository {
	return &gormUserRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.User](db),
	}
}

func (g *gormUserRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.User, error) {
	var user models.User
	err := g.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", id).Error
	return user, err
}

// ListEligibleConsultants returns consultants of the sector that are active,
// above the rating floor and below their capacity limit. Load is derived
// from open ledger entries on non-terminal applications, never from a stored
// counter. Ordering by derived load keeps the result deterministic; the
// service layer applies the weighted ranking on top.
func (g *gormUserRepository) ListEligibleConsultants(sector string, minRating float64) ([]models.ConsultantCandidate, error) {
	var candidates []models.ConsultantCandidate
	err := g.db.Raw(`
		SELECT
			u.id AS consultant_id,
			u.name,
			u.sector,
			u.rating,
			u.review_count,
			u.max_concurrent_applications,
			u.last_assigned_at,
			COALESCE(load.open_count, 0) AS current_load
		FROM users u
		LEFT JOIN (
			SELECT ale.consultant_id, COUNT(*) AS open_count
			FROM assignment_log_entries ale
			JOIN applications a ON a.id = ale.application_id
			WHERE ale.unassigned_at IS NULL
			  AND a.status NOT IN ('completed', 'rejected', 'cancelled')
			GROUP BY ale.consultant_id
		) load ON load.consultant_id = u.id
		WHERE u.role = ?
		  AND u.availability = ?
		  AND u.sector = ?
		  AND u.rating >= ?
		  AND COALESCE(load.open_count, 0) < u.max_concurrent_applications
		ORDER BY current_load ASC, u.id ASC`,
		dtos.RoleConsultant, dtos.AvailabilityActive, sector, minRating,
	).Scan(&candidates).Error
	return candidates, err
}

func (g *gormUserRepository) ListAdmins() ([]models.User, error) {
	var admins []models.User
	err := g.db.Where("role = ?", dtos.RoleAdmin).Find(&admins).Error
	return admins, err
}
