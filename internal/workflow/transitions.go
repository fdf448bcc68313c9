package workflow

import (
	"time"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

// The start/finish operations for the PDND, Design and Mounting stages carry
// no status guard: a declined item re-enters through them with the reprocess
// flag, which restarts the stage without touching its original start stamp.

func StartPdnd(req *models.AdjustmentRequest, actor string, reprocess bool) error {
	now := time.Now()
	req.Status = models.StatusProsesAdjustmentPdnd
	req.PdndBy = &actor
	if reprocess {
		req.PdndFinishAt = nil
		clearDecline(req)
	} else {
		req.PdndStartAt = &now
	}
	return nil
}

func FinishPdnd(req *models.AdjustmentRequest) error {
	now := time.Now()
	req.Status = models.StatusMenungguAdjustment
	req.PdndFinishAt = &now
	return nil
}

func StartDesign(req *models.AdjustmentRequest, actor string, reprocess bool) error {
	now := time.Now()
	req.Status = models.StatusProsesAdjustmentDesign
	req.DesignBy = &actor
	if reprocess {
		req.DesignFinishAt = nil
		clearDecline(req)
	} else {
		req.DesignStartAt = &now
	}
	return nil
}

func FinishDesign(req *models.AdjustmentRequest) error {
	now := time.Now()
	req.Status = models.StatusMenungguAdjustment
	req.DesignFinishAt = &now
	return nil
}

func StartAdjustment(req *models.AdjustmentRequest, actor string, reprocess bool) error {
	now := time.Now()
	req.Status = models.StatusProsesAdjustment
	req.AdjustmentBy = &actor
	if reprocess {
		req.AdjustmentFinishAt = nil
		clearDecline(req)
	} else {
		req.AdjustmentStartAt = &now
	}
	return nil
}

func FinishAdjustment(req *models.AdjustmentRequest) error {
	now := time.Now()
	req.Status = models.StatusProsesCtp
	req.AdjustmentFinishAt = &now
	return nil
}

// DeclineMounting returns the item to the requester from the Mounting queue.
func DeclineMounting(req *models.AdjustmentRequest, actor, reason string) error {
	req.Status = models.StatusDitolakMounting
	setDecline(req, actor, reason)
	return nil
}

// DeclineCtpAdjustment returns an adjustment item from the CTP queue.
func DeclineCtpAdjustment(req *models.AdjustmentRequest, actor, reason string) error {
	req.Status = models.StatusDitolakCtp
	setDecline(req, actor, reason)
	return nil
}

// CancelAdjustment is only allowed while the item still waits in the PDND or
// Design queue; once a division has picked it up the item must run its
// course or be declined.
func CancelAdjustment(req *models.AdjustmentRequest, actor, reason string) error {
	switch req.Status {
	case models.StatusMenungguAdjustmentPdnd, models.StatusMenungguAdjustmentDesign:
	default:
		return guardError("cancel adjustment", req.Status)
	}
	now := time.Now()
	req.Status = models.StatusAdjustmentDibatalkan
	req.CancellationReason = &reason
	req.CancelledBy = &actor
	req.CancelledAt = &now
	return nil
}

func StartCtpAdjustment(req *models.AdjustmentRequest, actor, group string) error {
	if req.Status != models.StatusProsesCtp {
		return guardError("start ctp", req.Status)
	}
	now := time.Now()
	req.Status = models.StatusProsesPlate
	req.PlateStartAt = &now
	req.CtpBy = &actor
	req.CtpGroup = &group
	return nil
}

func FinishCtpAdjustment(req *models.AdjustmentRequest) error {
	if req.Status != models.StatusProsesPlate || req.PlateStartAt == nil || req.CtpBy == nil {
		return guardError("finish ctp", req.Status)
	}
	now := time.Now()
	req.Status = models.StatusAntarPlate
	req.PlateFinishAt = &now
	return nil
}

func DeliverPlateAdjustment(req *models.AdjustmentRequest) error {
	if req.Status != models.StatusAntarPlate || req.PlateFinishAt == nil || req.CtpBy == nil {
		return guardError("deliver plate", req.Status)
	}
	now := time.Now()
	req.Status = models.StatusSelesai
	req.PlateDeliveredAt = &now
	return nil
}

func setDecline(req *models.AdjustmentRequest, actor, reason string) {
	now := time.Now()
	req.IsDeclined = true
	req.DeclineReason = &reason
	req.DeclinedBy = &actor
	req.DeclinedAt = &now
}

func clearDecline(req *models.AdjustmentRequest) {
	req.IsDeclined = false
	req.DeclineReason = nil
	req.DeclinedBy = nil
	req.DeclinedAt = nil
}
