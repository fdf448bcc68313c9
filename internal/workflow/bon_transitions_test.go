package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

func TestBonFullLifecycle(t *testing.T) {
	req := &models.BonRequest{ID: 7, Status: InitialBonStatus()}
	assert.Equal(t, models.StatusProsesCtp, req.Status)

	assert.NoError(t, StartCtpBon(req, "agus", "Group B"))
	assert.Equal(t, models.StatusProsesPlate, req.Status)
	assert.NotNil(t, req.PlateStartAt)
	assert.Equal(t, "agus", *req.CtpBy)

	assert.NoError(t, FinishCtpBon(req))
	assert.Equal(t, models.StatusAntarPlate, req.Status)
	assert.NotNil(t, req.PlateFinishAt)

	assert.NoError(t, DeliverPlateBon(req))
	assert.Equal(t, models.StatusSelesai, req.Status)
	assert.NotNil(t, req.PlateDeliveredAt)

	// A finished bon cannot be picked up again.
	err := StartCtpBon(req, "agus", "Group B")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.StatusSelesai, req.Status)
}

func TestFinishCtpBonGuard(t *testing.T) {
	req := &models.BonRequest{ID: 7, Status: models.StatusProsesCtp}
	assert.ErrorIs(t, FinishCtpBon(req), ErrInvalidTransition)

	req.Status = models.StatusProsesPlate
	// Start stamps missing even though the status matches.
	assert.ErrorIs(t, FinishCtpBon(req), ErrInvalidTransition)
}

func TestDeclineCtpBonFromAnyCtpState(t *testing.T) {
	req := &models.BonRequest{ID: 7, Status: models.StatusProsesPlate}

	assert.NoError(t, DeclineCtpBon(req, "agus", "plate size mismatch"))

	assert.Equal(t, models.StatusDitolakCtp, req.Status)
	assert.True(t, req.IsDeclined)
	assert.Equal(t, "plate size mismatch", *req.DeclineReason)
	assert.Equal(t, "agus", *req.DeclinedBy)
	assert.NotNil(t, req.DeclinedAt)
}

func TestCancelBonOnlyBeforePickup(t *testing.T) {
	req := &models.BonRequest{ID: 7, Status: models.StatusProsesCtp}
	assert.NoError(t, CancelBon(req, "dewi", "duplicate bon"))
	assert.Equal(t, models.StatusBonDibatalkan, req.Status)
	assert.True(t, req.Status.IsTerminal())

	for _, status := range []models.Status{
		models.StatusProsesPlate,
		models.StatusAntarPlate,
		models.StatusSelesai,
		models.StatusBonDibatalkan,
	} {
		req := &models.BonRequest{ID: 7, Status: status}
		err := CancelBon(req, "dewi", "duplicate bon")
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, status, req.Status)
	}
}
