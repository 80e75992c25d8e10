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
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
	"gorm.io/gorm"
)

type gormAssignmentLogRepository struct {
	db *gorm.DB
}

func NewAssignmentLogRepository(db *gorm.DB) *gormAssignmentLogRepository {
	return &gormAssignmentLogRepository{db: db}
}

func (g *gormAssignmentLogRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}

// Open appends a new ledger entry. The partial unique index on open entries
// rejects a second open entry for the same application, which surfaces here
// as an assignment conflict regardless of which instance raced us.
func (g *gormAssignmentLogRepository) Open(tx *gorm.DB, entry *models.AssignmentLogEntry) error {
	if err := g.getDB(tx).Create(entry).Error; err != nil {
		if isUniqueViolation(err, "idx_assignment_log_entries_single_open") {
			return shared.NewAssignmentConflict(err)
		}
		return err
	}
	return nil
}

// Close stamps the unassignment fields on the currently open entry. The
// UPDATE is guarded by unassigned_at IS NULL, so a concurrent close loses by
// matching zero rows instead of double-stamping.
func (g *gormAssignmentLogRepository) Close(tx *gorm.DB, applicationID uuid.UUID, actorID *uuid.UUID, reason string) (models.AssignmentLogEntry, error) {
	db := g.getDB(tx)

	entry, err := g.FindOpenByApplicationID(tx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AssignmentLogEntry{}, shared.NewNoActiveAssignment()
		}
		return models.AssignmentLogEntry{}, err
	}

	now := time.Now()
	result := db.Model(&models.AssignmentLogEntry{}).
		Where("id = ? AND unassigned_at IS NULL", entry.ID).
		Updates(map[string]any{
			"unassigned_at":       now,
			"unassigned_by_id":    actorID,
			"unassignment_reason": reason,
		})
	if result.Error != nil {
		return models.AssignmentLogEntry{}, result.Error
	}
	// a concurrent close between the read and the update matches zero rows
	if result.RowsAffected == 0 {
		return models.AssignmentLogEntry{}, shared.NewNoActiveAssignment()
	}

	entry.UnassignedAt = &now
	entry.UnassignedByID = actorID
	entry.UnassignmentReason = &reason
	return entry, nil
}

func (g *gormAssignmentLogRepository) FindOpenByApplicationID(tx *gorm.DB, applicationID uuid.UUID) (models.AssignmentLogEntry, error) {
	var entry models.AssignmentLogEntry
	err := g.getDB(tx).
		Where("application_id = ? AND unassigned_at IS NULL", applicationID).
		First(&entry).Error
	return entry, err
}

// ActiveFor returns the consultant's open entries on non-terminal
// applications, newest first.
func (g *gormAssignmentLogRepository) ActiveFor(consultantID uuid.UUID) ([]models.AssignmentLogEntry, error) {
	var entries []models.AssignmentLogEntry
	err := g.db.
		Joins("JOIN applications ON applications.id = assignment_log_entries.application_id").
		Where("assignment_log_entries.consultant_id = ? AND assignment_log_entries.unassigned_at IS NULL", consultantID).
		Where("applications.status NOT IN ?", terminalStatuses()).
		Order("assignment_log_entries.created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (g *gormAssignmentLogRepository) HistoryFor(applicationID uuid.UUID) ([]models.AssignmentLogEntry, error) {
	var entries []models.AssignmentLogEntry
	err := g.db.
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// CurrentLoad counts open entries on non-terminal applications. Queried
// inside the assignment transaction so the capacity check and the insert see
// the same snapshot.
func (g *gormAssignmentLogRepository) CurrentLoad(tx *gorm.DB, consultantID uuid.UUID) (int, error) {
	var count int64
	err := g.getDB(tx).Model(&models.AssignmentLogEntry{}).
		Joins("JOIN applications ON applications.id = assignment_log_entries.application_id").
		Where("assignment_log_entries.consultant_id = ? AND assignment_log_entries.unassigned_at IS NULL", consultantID).
		Where("applications.status NOT IN ?", terminalStatuses()).
		Count(&count).Error
	return int(count), err
}

func (g *gormAssignmentLogRepository) AverageAssignmentDuration(assignmentType dtos.AssignmentType) (time.Duration, error) {
	var seconds *float64
	err := g.db.Model(&models.AssignmentLogEntry{}).
		Select("AVG(EXTRACT(EPOCH FROM (unassigned_at - created_at)))").
		Where("assignment_type = ? AND unassigned_at IS NOT NULL", assignmentType).
		Scan(&seconds).Error
	if err != nil || seconds == nil {
		return 0, err
	}
	return time.Duration(*seconds * float64(time.Second)), nil
}

func (g *gormAssignmentLogRepository) Transaction(f func(tx *gorm.DB) error) error {
	tx := g.db.Begin()
	err := f(tx)
	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func terminalStatuses() []dtos.ApplicationStatus {
	return []dtos.ApplicationStatus{dtos.StatusCompleted, dtos.StatusRejected, dtos.StatusCancelled}
}
