package models

import "time"

// Remarks classifiers for adjustment requests. The FA variants route through
// PDND or Design before Mounting; the CURVE variants go straight to Mounting.
const (
	RemarksFaProof       = "ADJUSTMENT FA PROOF"
	RemarksFaProduksi    = "ADJUSTMENT FA PRODUKSI"
	RemarksCurveProof    = "ADJUSTMENT CURVE PROOF"
	RemarksCurveProduksi = "ADJUSTMENT CURVE PRODUKSI"
)

// AdjustmentRequest is one print job's plate adjustment work item. Stage
// timestamp pairs are populated as the item moves through the division
// queues; which pairs are set is encoded by Status.
type AdjustmentRequest struct {
	ID         int       `db:"id" json:"id"`
	Tanggal    time.Time `db:"tanggal" json:"tanggal"`
	MesinCetak string    `db:"mesin_cetak" json:"mesin_cetak"`
	WoNumber   string    `db:"wo_number" json:"wo_number"`
	McNumber   string    `db:"mc_number" json:"mc_number"`
	ItemName   string    `db:"item_name" json:"item_name"`
	Pic        string    `db:"pic" json:"pic"`
	Remarks    string    `db:"remarks" json:"remarks"`
	IsEpson    bool      `db:"is_epson" json:"is_epson"`
	Status     Status    `db:"status" json:"status"`

	MachineOffAt *time.Time `db:"machine_off_at" json:"machine_off_at"`

	PdndStartAt  *time.Time `db:"pdnd_start_at" json:"pdnd_start_at"`
	PdndFinishAt *time.Time `db:"pdnd_finish_at" json:"pdnd_finish_at"`
	PdndBy       *string    `db:"pdnd_by" json:"pdnd_by"`

	DesignStartAt  *time.Time `db:"design_start_at" json:"design_start_at"`
	DesignFinishAt *time.Time `db:"design_finish_at" json:"design_finish_at"`
	DesignBy       *string    `db:"design_by" json:"design_by"`

	AdjustmentStartAt  *time.Time `db:"adjustment_start_at" json:"adjustment_start_at"`
	AdjustmentFinishAt *time.Time `db:"adjustment_finish_at" json:"adjustment_finish_at"`
	AdjustmentBy       *string    `db:"adjustment_by" json:"adjustment_by"`

	PlateStartAt     *time.Time `db:"plate_start_at" json:"plate_start_at"`
	PlateFinishAt    *time.Time `db:"plate_finish_at" json:"plate_finish_at"`
	CtpBy            *string    `db:"ctp_by" json:"ctp_by"`
	CtpGroup         *string    `db:"ctp_group" json:"ctp_group"`
	PlateDeliveredAt *time.Time `db:"plate_delivered_at" json:"plate_delivered_at"`

	IsDeclined    bool       `db:"is_declined" json:"is_declined"`
	DeclineReason *string    `db:"decline_reason" json:"decline_reason"`
	DeclinedBy    *string    `db:"declined_by" json:"declined_by"`
	DeclinedAt    *time.Time `db:"declined_at" json:"declined_at"`

	CancellationReason *string    `db:"cancellation_reason" json:"cancellation_reason"`
	CancelledBy        *string    `db:"cancelled_by" json:"cancelled_by"`
	CancelledAt        *time.Time `db:"cancelled_at" json:"cancelled_at"`
}
