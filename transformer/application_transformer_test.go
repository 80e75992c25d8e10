package transformer_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
	"github.com/incentra-dev/incentra/transformer"
	"github.com/incentra-dev/incentra/utils"
	"github.com/stretchr/testify/assert"
)

func TestApplicationModelToDTO(t *testing.T) {
	now := time.Now()
	consultantID := uuid.New()

	application := models.Application{
		Model:                models.Model{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Number:               "INC-2026-000042",
		Status:               dtos.StatusUnderReview,
		Priority:             dtos.PriorityHigh,
		ProjectTitle:         "Solar retrofit",
		Sector:               "energy",
		RequestedAmount:      125000,
		Currency:             "EUR",
		OwnerID:              uuid.New(),
		AssignedConsultantID: &consultantID,
		AssignmentType:       utils.Ptr(dtos.AssignmentTypeAutomatic),
		SubmittedAt:          &now,
	}

	dto := transformer.ApplicationModelToDTO(application)

	assert.Equal(t, application.ID, dto.ID)
	assert.Equal(t, "INC-2026-000042", dto.Number)
	assert.Equal(t, dtos.StatusUnderReview, dto.Status)
	assert.Equal(t, &consultantID, dto.AssignedConsultantID)
	assert.Equal(t, dtos.AssignmentTypeAutomatic, *dto.AssignmentType)
	assert.Equal(t, &now, dto.SubmittedAt)
}

func TestTransitionResultToDTO(t *testing.T) {
	t.Run("carries the assignment outcome when matching failed", func(t *testing.T) {
		result := shared.TransitionResult{
			Application:     models.Application{Status: dtos.StatusSubmitted},
			AssignmentError: shared.NewNoEligibleConsultant("energy"),
		}

		dto := transformer.TransitionResultToDTO(result)

		assert.Equal(t, dtos.StatusSubmitted, dto.Application.Status)
		assert.NotNil(t, dto.Assignment)
		assert.Contains(t, *dto.Assignment, "energy")
	})

	t.Run("omits the assignment field when nothing was triggered", func(t *testing.T) {
		dto := transformer.TransitionResultToDTO(shared.TransitionResult{
			Application: models.Application{Status: dtos.StatusApproved},
		})
		assert.Nil(t, dto.Assignment)
	})
}
