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
	"github.com/incentra-dev/incentra/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormSupportTicketRepository struct {
	utils.Repository[uuid.UUID, models.SupportTicket, *gorm.DB]
	db *gorm.DB
}

func NewSupportTicketRepository(db *gorm.DB) *gormSupportTicketRepository {
	return &gormSupportTicketRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.SupportTicket](db),
	}
}

func (g *gormSupportTicketRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := g.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&ticket, "id = ?", id).Error
	return ticket, err
}
