// Package workflow implements the division hand-off state machine for plate
// adjustment and plate bon requests. Transitions mutate the loaded entity;
// persisting the result is the caller's job.
package workflow

import (
	"errors"
	"fmt"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

// ErrInvalidTransition marks a state-guard violation. Handlers map it to a
// conflict response; the operator has to correct the action, not retry it.
var ErrInvalidTransition = errors.New("invalid transition")

func guardError(op string, current models.Status) error {
	return fmt.Errorf("%w: cannot %s; current status is %s", ErrInvalidTransition, op, current)
}

// Division queue membership. The notification counts endpoint derives its
// numbers from these sets; they are views over Status, not separate state.
var (
	PdndStates = []models.Status{
		models.StatusMenungguAdjustmentPdnd,
		models.StatusProsesAdjustmentPdnd,
	}
	DesignStates = []models.Status{
		models.StatusMenungguAdjustmentDesign,
		models.StatusProsesAdjustmentDesign,
	}
	MountingStates = []models.Status{
		models.StatusMenungguAdjustment,
		models.StatusProsesAdjustment,
		models.StatusDitolakMounting,
	}
	CtpStates = []models.Status{
		models.StatusProsesCtp,
		models.StatusProsesPlate,
		models.StatusAntarPlate,
		models.StatusDitolakCtp,
	}
)

// InitialAdjustmentStatus picks the entry queue for a new adjustment
// request. CURVE work bypasses PDND/Design regardless of the epson flag;
// FA work routes to Design for epson items and PDND otherwise. Unrecognized
// remarks fall back to the Mounting queue.
func InitialAdjustmentStatus(remarks string, isEpson bool) models.Status {
	switch remarks {
	case models.RemarksCurveProof, models.RemarksCurveProduksi:
		return models.StatusMenungguAdjustment
	case models.RemarksFaProof, models.RemarksFaProduksi:
		if isEpson {
			return models.StatusMenungguAdjustmentDesign
		}
		return models.StatusMenungguAdjustmentPdnd
	default:
		return models.StatusMenungguAdjustment
	}
}
