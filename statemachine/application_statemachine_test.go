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
package statemachine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
	"github.com/stretchr/testify/assert"
)

func TestApplicationMachine(t *testing.T) {
	ownerID := uuid.New()
	owner := shared.Actor{ID: ownerID, Role: dtos.RoleUser}
	stranger := shared.Actor{ID: uuid.New(), Role: dtos.RoleUser}
	consultant := shared.Actor{ID: uuid.New(), Role: dtos.RoleConsultant}
	admin := shared.Actor{ID: uuid.New(), Role: dtos.RoleAdmin}

	t.Run("should let the owning user submit a draft", func(t *testing.T) {
		err := ApplicationMachine.Validate(dtos.StatusDraft, dtos.StatusSubmitted, owner, ownerID)
		assert.NoError(t, err)
	})

	t.Run("should reject a submit by a user who does not own the application", func(t *testing.T) {
		err := ApplicationMachine.Validate(dtos.StatusDraft, dtos.StatusSubmitted, stranger, ownerID)
		assert.True(t, shared.IsKind(err, shared.KindForbidden))
	})

	t.Run("should report an illegal edge before checking roles", func(t *testing.T) {
		// draft -> approved is illegal for everyone, including admins
		err := ApplicationMachine.Validate(dtos.StatusDraft, dtos.StatusApproved, admin, ownerID)
		assert.True(t, shared.IsKind(err, shared.KindInvalidTransition))

		// the same edge probed by an unauthorized role still reports the
		// illegal edge, not the role mismatch
		err = ApplicationMachine.Validate(dtos.StatusDraft, dtos.StatusApproved, stranger, ownerID)
		assert.True(t, shared.IsKind(err, shared.KindInvalidTransition))
	})

	t.Run("should only let consultants and admins decide a review", func(t *testing.T) {
		assert.NoError(t, ApplicationMachine.Validate(dtos.StatusUnderReview, dtos.StatusApproved, consultant, ownerID))
		assert.NoError(t, ApplicationMachine.Validate(dtos.StatusUnderReview, dtos.StatusRejected, admin, ownerID))

		err := ApplicationMachine.Validate(dtos.StatusUnderReview, dtos.StatusApproved, owner, ownerID)
		assert.True(t, shared.IsKind(err, shared.KindForbidden))
	})

	t.Run("should only let admins cancel", func(t *testing.T) {
		for _, from := range []dtos.ApplicationStatus{dtos.StatusDraft, dtos.StatusSubmitted, dtos.StatusUnderReview, dtos.StatusAdditionalInfoRequired, dtos.StatusApproved} {
			assert.NoError(t, ApplicationMachine.Validate(from, dtos.StatusCancelled, admin, ownerID), "from %s", from)

			err := ApplicationMachine.Validate(from, dtos.StatusCancelled, consultant, ownerID)
			assert.True(t, shared.IsKind(err, shared.KindForbidden), "from %s", from)
		}
	})

	t.Run("should bounce between under_review and additional_info_required", func(t *testing.T) {
		assert.NoError(t, ApplicationMachine.Validate(dtos.StatusUnderReview, dtos.StatusAdditionalInfoRequired, consultant, ownerID))
		assert.NoError(t, ApplicationMachine.Validate(dtos.StatusAdditionalInfoRequired, dtos.StatusUnderReview, owner, ownerID))
	})

	t.Run("should allow administrative closure of decided applications", func(t *testing.T) {
		for _, from := range []dtos.ApplicationStatus{dtos.StatusApproved, dtos.StatusRejected, dtos.StatusCancelled} {
			assert.NoError(t, ApplicationMachine.Validate(from, dtos.StatusCompleted, admin, ownerID), "from %s", from)
		}
	})

	t.Run("completed has no outgoing edges", func(t *testing.T) {
		assert.Empty(t, ApplicationMachine.Reachable(dtos.StatusCompleted))
	})

	t.Run("every reachable target of every state is a valid status", func(t *testing.T) {
		for _, from := range []dtos.ApplicationStatus{
			dtos.StatusDraft, dtos.StatusSubmitted, dtos.StatusUnderReview,
			dtos.StatusAdditionalInfoRequired, dtos.StatusApproved,
			dtos.StatusRejected, dtos.StatusCancelled, dtos.StatusCompleted,
		} {
			for _, to := range ApplicationMachine.Reachable(from) {
				assert.True(t, to.Valid(), "%s -> %s", from, to)
				assert.NotEqual(t, from, to, "self loop on %s", from)
			}
		}
	})
}

func TestStampTimestamps(t *testing.T) {
	now := time.Now()

	t.Run("should stamp the timestamp of the entered status", func(t *testing.T) {
		app := models.Application{}

		StampTimestamps(&app, dtos.StatusSubmitted, now)
		assert.NotNil(t, app.SubmittedAt)

		StampTimestamps(&app, dtos.StatusApproved, now)
		assert.NotNil(t, app.ApprovedAt)
		assert.Nil(t, app.RejectedAt)
	})

	t.Run("should not overwrite the first review timestamp on re-entry", func(t *testing.T) {
		app := models.Application{}

		first := now.Add(-time.Hour)
		StampTimestamps(&app, dtos.StatusUnderReview, first)
		StampTimestamps(&app, dtos.StatusUnderReview, now)

		assert.Equal(t, first, *app.ReviewedAt)
	})
}
