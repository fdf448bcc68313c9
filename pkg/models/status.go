package models

import "fmt"

// Status is the workflow state of a plate adjustment or plate bon request.
// The literal values are part of the external contract (frontend polling,
// Excel exports) and must not be renamed.
type Status string

const (
	StatusMenungguAdjustmentPdnd   Status = "menunggu_adjustment_pdnd"
	StatusProsesAdjustmentPdnd     Status = "proses_adjustment_pdnd"
	StatusMenungguAdjustmentDesign Status = "menunggu_adjustment_design"
	StatusProsesAdjustmentDesign   Status = "proses_adjustment_design"
	StatusMenungguAdjustment       Status = "menunggu_adjustment"
	StatusProsesAdjustment         Status = "proses_adjustment"
	StatusDitolakMounting          Status = "ditolakmounting"
	StatusDitolakCtp               Status = "ditolakctp"
	StatusProsesCtp                Status = "proses_ctp"
	StatusProsesPlate              Status = "proses_plate"
	StatusAntarPlate               Status = "antar_plate"
	StatusSelesai                  Status = "selesai"
	StatusAdjustmentDibatalkan     Status = "adjustmentdibatalkan"
	StatusBonDibatalkan            Status = "bondibatalkan"
)

func NewStatus(value string) (Status, error) {
	status := Status(value)
	if !status.isValid() {
		return "", fmt.Errorf("invalid status: %s", value)
	}
	return status, nil
}

func (s Status) isValid() bool {
	switch s {
	case StatusMenungguAdjustmentPdnd, StatusProsesAdjustmentPdnd,
		StatusMenungguAdjustmentDesign, StatusProsesAdjustmentDesign,
		StatusMenungguAdjustment, StatusProsesAdjustment,
		StatusDitolakMounting, StatusDitolakCtp,
		StatusProsesCtp, StatusProsesPlate, StatusAntarPlate,
		StatusSelesai, StatusAdjustmentDibatalkan, StatusBonDibatalkan:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is expected.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusSelesai, StatusAdjustmentDibatalkan, StatusBonDibatalkan:
		return true
	default:
		return false
	}
}
