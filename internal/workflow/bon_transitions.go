package workflow

import (
	"time"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

// Bon requests have no upstream stages; every bon starts at proses_ctp.
func InitialBonStatus() models.Status {
	return models.StatusProsesCtp
}

func StartCtpBon(req *models.BonRequest, actor, group string) error {
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

func FinishCtpBon(req *models.BonRequest) error {
	if req.Status != models.StatusProsesPlate || req.PlateStartAt == nil || req.CtpBy == nil {
		return guardError("finish ctp", req.Status)
	}
	now := time.Now()
	req.Status = models.StatusAntarPlate
	req.PlateFinishAt = &now
	return nil
}

func DeliverPlateBon(req *models.BonRequest) error {
	if req.Status != models.StatusAntarPlate || req.PlateFinishAt == nil || req.CtpBy == nil {
		return guardError("deliver plate", req.Status)
	}
	now := time.Now()
	req.Status = models.StatusSelesai
	req.PlateDeliveredAt = &now
	return nil
}

func DeclineCtpBon(req *models.BonRequest, actor, reason string) error {
	now := time.Now()
	req.Status = models.StatusDitolakCtp
	req.IsDeclined = true
	req.DeclineReason = &reason
	req.DeclinedBy = &actor
	req.DeclinedAt = &now
	return nil
}

// CancelBon is only allowed before CTP picks the bon up.
func CancelBon(req *models.BonRequest, actor, reason string) error {
	if req.Status != models.StatusProsesCtp {
		return guardError("cancel bon", req.Status)
	}
	now := time.Now()
	req.Status = models.StatusBonDibatalkan
	req.CancellationReason = &reason
	req.CancelledBy = &actor
	req.CancelledAt = &now
	return nil
}
