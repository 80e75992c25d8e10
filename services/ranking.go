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
	"slices"
	"strings"
	"time"

	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/shared"
)

// rankCandidates orders candidates for automatic matching: lowest load first,
// then highest weighted score (rating plus rotation staleness), then longest
// time since last assignment, tie-broken by consultant ID so the ranking is
// fully deterministic. With the default weights (rating 1, rotation 0) this
// is exactly: load, rating, rotation, ID.
func rankCandidates(candidates []models.ConsultantCandidate, config shared.EngineConfig, now time.Time) []models.ConsultantCandidate {
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, func(a, b models.ConsultantCandidate) int {
		if a.CurrentLoad != b.CurrentLoad {
			return a.CurrentLoad - b.CurrentLoad
		}

		scoreA := candidateScore(a, config, now)
		scoreB := candidateScore(b, config, now)
		if scoreA != scoreB {
			if scoreA > scoreB {
				return -1
			}
			return 1
		}

		if c := compareLastAssigned(a.LastAssignedAt, b.LastAssignedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ConsultantID.String(), b.ConsultantID.String())
	})
	return ranked
}

func candidateScore(candidate models.ConsultantCandidate, config shared.EngineConfig, now time.Time) float64 {
	score := config.RatingWeight * candidate.Rating
	if config.RotationWeight != 0 {
		score += config.RotationWeight * stalenessHours(candidate.LastAssignedAt, now)
	}
	return score
}

// stalenessHours measures how long a consultant has been idle. Never-assigned
// consultants get the age of the account's rating history upper-bounded at a
// year, which outranks anyone assigned recently.
func stalenessHours(lastAssignedAt *time.Time, now time.Time) float64 {
	if lastAssignedAt == nil {
		return float64(365 * 24)
	}
	return now.Sub(*lastAssignedAt).Hours()
}

// compareLastAssigned sorts never-assigned consultants first, then oldest
// assignment first, to rotate load.
func compareLastAssigned(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Before(*b):
		return -1
	case b.Before(*a):
		return 1
	}
	return 0
}
