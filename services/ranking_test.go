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
	"github.com/incentra-dev/incentra/shared"
	"github.com/incentra-dev/incentra/utils"
	"github.com/stretchr/testify/assert"
)

func candidate(id string, load int, rating float64, lastAssignedAt *time.Time) models.ConsultantCandidate {
	return models.ConsultantCandidate{
		ConsultantID:   uuid.MustParse(id),
		CurrentLoad:    load,
		Rating:         rating,
		LastAssignedAt: lastAssignedAt,
	}
}

func TestRankCandidates(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	defaults := shared.EngineConfig{RatingWeight: 1.0, RotationWeight: 0.0}

	t.Run("lowest load wins regardless of rating", func(t *testing.T) {
		busy := candidate("00000000-0000-0000-0000-000000000001", 5, 5.0, nil)
		idle := candidate("00000000-0000-0000-0000-000000000002", 1, 2.0, nil)

		ranked := rankCandidates([]models.ConsultantCandidate{busy, idle}, defaults, now)

		assert.Equal(t, idle.ConsultantID, ranked[0].ConsultantID)
		assert.Equal(t, busy.ConsultantID, ranked[1].ConsultantID)
	})

	t.Run("equal load falls back to rating", func(t *testing.T) {
		lowRated := candidate("00000000-0000-0000-0000-000000000001", 2, 3.0, nil)
		highRated := candidate("00000000-0000-0000-0000-000000000002", 2, 4.5, nil)

		ranked := rankCandidates([]models.ConsultantCandidate{lowRated, highRated}, defaults, now)

		assert.Equal(t, highRated.ConsultantID, ranked[0].ConsultantID)
	})

	t.Run("equal load and rating rotates to the never-assigned consultant", func(t *testing.T) {
		recent := candidate("00000000-0000-0000-0000-000000000001", 2, 4.0, utils.Ptr(now.Add(-time.Hour)))
		never := candidate("00000000-0000-0000-0000-000000000002", 2, 4.0, nil)
		stale := candidate("00000000-0000-0000-0000-000000000003", 2, 4.0, utils.Ptr(now.Add(-72*time.Hour)))

		ranked := rankCandidates([]models.ConsultantCandidate{recent, never, stale}, defaults, now)

		assert.Equal(t, never.ConsultantID, ranked[0].ConsultantID)
		assert.Equal(t, stale.ConsultantID, ranked[1].ConsultantID)
		assert.Equal(t, recent.ConsultantID, ranked[2].ConsultantID)
	})

	t.Run("full tie breaks deterministically on consultant ID", func(t *testing.T) {
		second := candidate("00000000-0000-0000-0000-000000000002", 0, 4.0, nil)
		first := candidate("00000000-0000-0000-0000-000000000001", 0, 4.0, nil)

		ranked := rankCandidates([]models.ConsultantCandidate{second, first}, defaults, now)

		assert.Equal(t, first.ConsultantID, ranked[0].ConsultantID)
	})

	t.Run("rotation weight can outrank a better rating", func(t *testing.T) {
		config := shared.EngineConfig{RatingWeight: 1.0, RotationWeight: 0.1}
		rated := candidate("00000000-0000-0000-0000-000000000001", 1, 5.0, utils.Ptr(now.Add(-time.Hour)))
		// 3.0 + 0.1*100h staleness = 13.0 beats 5.0 + 0.1*1h
		idle := candidate("00000000-0000-0000-0000-000000000002", 1, 3.0, utils.Ptr(now.Add(-100*time.Hour)))

		ranked := rankCandidates([]models.ConsultantCandidate{rated, idle}, config, now)

		assert.Equal(t, idle.ConsultantID, ranked[0].ConsultantID)
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		a := candidate("00000000-0000-0000-0000-000000000002", 3, 1.0, nil)
		b := candidate("00000000-0000-0000-0000-000000000001", 0, 1.0, nil)
		input := []models.ConsultantCandidate{a, b}

		rankCandidates(input, defaults, now)

		assert.Equal(t, a.ConsultantID, input[0].ConsultantID)
	})
}
