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
	"time"

	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
)

// ApplicationMachine is the formal workflow of an application.
//
//	draft -> submitted -> under_review <-> additional_info_required
//	under_review -> approved | rejected
//	any non-terminal -> cancelled (admin only)
//	approved | rejected | cancelled -> completed (administrative closure)
//
// completed has no outgoing edges.
var ApplicationMachine = &Machine[dtos.ApplicationStatus]{
	entity: "application",
	edges: map[dtos.ApplicationStatus]map[dtos.ApplicationStatus]edgePolicy{
		dtos.StatusDraft: {
			dtos.StatusSubmitted: ownerOr(dtos.RoleAdmin),
			dtos.StatusCancelled: roles(dtos.RoleAdmin),
		},
		dtos.StatusSubmitted: {
			dtos.StatusUnderReview: roles(dtos.RoleConsultant, dtos.RoleAdmin),
			dtos.StatusCancelled:   roles(dtos.RoleAdmin),
		},
		dtos.StatusUnderReview: {
			dtos.StatusAdditionalInfoRequired: roles(dtos.RoleConsultant, dtos.RoleAdmin),
			dtos.StatusApproved:               roles(dtos.RoleConsultant, dtos.RoleAdmin),
			dtos.StatusRejected:               roles(dtos.RoleConsultant, dtos.RoleAdmin),
			dtos.StatusCancelled:              roles(dtos.RoleAdmin),
		},
		dtos.StatusAdditionalInfoRequired: {
			dtos.StatusUnderReview: ownerOr(dtos.RoleConsultant, dtos.RoleAdmin),
			dtos.StatusCancelled:   roles(dtos.RoleAdmin),
		},
		dtos.StatusApproved: {
			dtos.StatusCompleted: roles(dtos.RoleAdmin),
			dtos.StatusCancelled: roles(dtos.RoleAdmin),
		},
		dtos.StatusRejected: {
			dtos.StatusCompleted: roles(dtos.RoleAdmin),
		},
		dtos.StatusCancelled: {
			dtos.StatusCompleted: roles(dtos.RoleAdmin),
		},
	},
}

// StampTimestamps records the workflow timestamp of the status just entered.
// Timestamps are write-once per status; re-entering under_review after
// additional_info_required keeps the first review timestamp.
func StampTimestamps(application *models.Application, target dtos.ApplicationStatus, now time.Time) {
	switch target {
	case dtos.StatusSubmitted:
		if application.SubmittedAt == nil {
			application.SubmittedAt = &now
		}
	case dtos.StatusUnderReview:
		if application.ReviewedAt == nil {
			application.ReviewedAt = &now
		}
	case dtos.StatusApproved:
		application.ApprovedAt = &now
	case dtos.StatusRejected:
		application.RejectedAt = &now
	case dtos.StatusCancelled:
		application.CancelledAt = &now
	case dtos.StatusCompleted:
		application.CompletedAt = &now
	}
}
