package models

import "time"

// Remarks classifiers for plate bon requests.
const (
	RemarksProduksi = "PRODUKSI"
	RemarksProof    = "PROOF"
)

// BonRequest is a plate requisition. Bons skip the PDND/Design/Mounting
// stages entirely and enter the workflow at the CTP queue.
type BonRequest struct {
	ID          int       `db:"id" json:"id"`
	Tanggal     time.Time `db:"tanggal" json:"tanggal"`
	MesinCetak  string    `db:"mesin_cetak" json:"mesin_cetak"`
	WoNumber    string    `db:"wo_number" json:"wo_number"`
	McNumber    string    `db:"mc_number" json:"mc_number"`
	ItemName    string    `db:"item_name" json:"item_name"`
	Pic         string    `db:"pic" json:"pic"`
	Remarks     string    `db:"remarks" json:"remarks"`
	PlateType   string    `db:"plate_type" json:"plate_type"`
	JumlahPlate int       `db:"jumlah_plate" json:"jumlah_plate"`
	Status      Status    `db:"status" json:"status"`

	MachineOffAt *time.Time `db:"machine_off_at" json:"machine_off_at"`

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
