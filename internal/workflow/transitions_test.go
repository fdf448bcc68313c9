package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

func newAdjustment(status models.Status) *models.AdjustmentRequest {
	return &models.AdjustmentRequest{ID: 1, Status: status}
}

func TestAdjustmentFullLifecycleViaPdnd(t *testing.T) {
	req := newAdjustment(models.StatusMenungguAdjustmentPdnd)

	assert.NoError(t, StartPdnd(req, "rina", false))
	assert.Equal(t, models.StatusProsesAdjustmentPdnd, req.Status)
	assert.NotNil(t, req.PdndStartAt)
	assert.Equal(t, "rina", *req.PdndBy)

	assert.NoError(t, FinishPdnd(req))
	assert.Equal(t, models.StatusMenungguAdjustment, req.Status)
	assert.NotNil(t, req.PdndFinishAt)

	assert.NoError(t, StartAdjustment(req, "budi", false))
	assert.Equal(t, models.StatusProsesAdjustment, req.Status)

	assert.NoError(t, FinishAdjustment(req))
	assert.Equal(t, models.StatusProsesCtp, req.Status)

	assert.NoError(t, StartCtpAdjustment(req, "agus", "Group A"))
	assert.Equal(t, models.StatusProsesPlate, req.Status)
	assert.Equal(t, "agus", *req.CtpBy)
	assert.Equal(t, "Group A", *req.CtpGroup)

	assert.NoError(t, FinishCtpAdjustment(req))
	assert.Equal(t, models.StatusAntarPlate, req.Status)

	assert.NoError(t, DeliverPlateAdjustment(req))
	assert.Equal(t, models.StatusSelesai, req.Status)
	assert.NotNil(t, req.PlateDeliveredAt)
	assert.True(t, req.Status.IsTerminal())
}

func TestStartPdndReprocessClearsDeclineAndFinish(t *testing.T) {
	req := newAdjustment(models.StatusDitolakMounting)
	start := time.Now().Add(-time.Hour)
	finish := time.Now().Add(-30 * time.Minute)
	req.PdndStartAt = &start
	req.PdndFinishAt = &finish
	assert.NoError(t, DeclineMounting(req, "tono", "wrong curve target"))
	assert.True(t, req.IsDeclined)

	assert.NoError(t, StartPdnd(req, "rina", true))

	assert.Equal(t, models.StatusProsesAdjustmentPdnd, req.Status)
	assert.Nil(t, req.PdndFinishAt)
	assert.False(t, req.IsDeclined)
	assert.Nil(t, req.DeclineReason)
	assert.Nil(t, req.DeclinedBy)
	assert.Nil(t, req.DeclinedAt)
	// Reprocess keeps the original start stamp.
	assert.Equal(t, start, *req.PdndStartAt)
}

func TestStartDesignReprocessClearsDecline(t *testing.T) {
	req := newAdjustment(models.StatusDitolakCtp)
	assert.NoError(t, DeclineCtpAdjustment(req, "agus", "plate scratched"))
	assert.True(t, req.IsDeclined)

	assert.NoError(t, StartDesign(req, "sari", true))

	assert.Equal(t, models.StatusProsesAdjustmentDesign, req.Status)
	assert.False(t, req.IsDeclined)
	assert.Nil(t, req.DesignStartAt)
}

func TestStartCtpAdjustmentGuard(t *testing.T) {
	for _, status := range []models.Status{
		models.StatusMenungguAdjustment,
		models.StatusProsesPlate,
		models.StatusAntarPlate,
		models.StatusSelesai,
		models.StatusAdjustmentDibatalkan,
	} {
		req := newAdjustment(status)
		err := StartCtpAdjustment(req, "agus", "Group A")
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, status, req.Status, "a rejected transition must not mutate the record")
	}
}

func TestFinishCtpAdjustmentRequiresStartStamps(t *testing.T) {
	req := newAdjustment(models.StatusProsesPlate)
	// Status matches but the start stamp and operator are missing.
	err := FinishCtpAdjustment(req)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	now := time.Now()
	actor := "agus"
	req.PlateStartAt = &now
	req.CtpBy = &actor
	assert.NoError(t, FinishCtpAdjustment(req))
	assert.Equal(t, models.StatusAntarPlate, req.Status)
}

func TestDeliverPlateAdjustmentGuard(t *testing.T) {
	req := newAdjustment(models.StatusAntarPlate)
	err := DeliverPlateAdjustment(req)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	now := time.Now()
	actor := "agus"
	req.PlateFinishAt = &now
	req.CtpBy = &actor
	assert.NoError(t, DeliverPlateAdjustment(req))
	assert.Equal(t, models.StatusSelesai, req.Status)
}

func TestCancelAdjustmentOnlyWhileWaiting(t *testing.T) {
	for _, status := range []models.Status{
		models.StatusMenungguAdjustmentPdnd,
		models.StatusMenungguAdjustmentDesign,
	} {
		req := newAdjustment(status)
		assert.NoError(t, CancelAdjustment(req, "dewi", "order pulled"))
		assert.Equal(t, models.StatusAdjustmentDibatalkan, req.Status)
		assert.Equal(t, "order pulled", *req.CancellationReason)
		assert.NotNil(t, req.CancelledAt)
	}

	for _, status := range []models.Status{
		models.StatusProsesAdjustmentPdnd,
		models.StatusMenungguAdjustment,
		models.StatusProsesCtp,
		models.StatusSelesai,
	} {
		req := newAdjustment(status)
		err := CancelAdjustment(req, "dewi", "order pulled")
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, status, req.Status)
	}
}

func TestGuardErrorMessageNamesCurrentStatus(t *testing.T) {
	req := newAdjustment(models.StatusSelesai)
	err := StartCtpAdjustment(req, "agus", "Group A")
	assert.EqualError(t, errors.Unwrap(err), "invalid transition")
	assert.Contains(t, err.Error(), "cannot start ctp")
	assert.Contains(t, err.Error(), "selesai")
}
