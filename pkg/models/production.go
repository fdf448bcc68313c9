package models

import "time"

// ProductionLog is one CTP machine-usage record. Plate consumption for the
// plate stock cards is derived by summing good and not-good counts per
// (log_date, ctp_shift, plate_type_material).
type ProductionLog struct {
	ID                int        `db:"id" json:"id"`
	LogDate           time.Time  `db:"log_date" json:"log_date"`
	CtpShift          string     `db:"ctp_shift" json:"ctp_shift"`
	CtpGroup          string     `db:"ctp_group" json:"ctp_group"`
	CtpPic            string     `db:"ctp_pic" json:"ctp_pic"`
	MesinCetak        string     `db:"mesin_cetak" json:"mesin_cetak"`
	WoNumber          string     `db:"wo_number" json:"wo_number"`
	McNumber          string     `db:"mc_number" json:"mc_number"`
	ItemName          string     `db:"item_name" json:"item_name"`
	PlateTypeMaterial string     `db:"plate_type_material" json:"plate_type_material"`
	NumPlateGood      int        `db:"num_plate_good" json:"num_plate_good"`
	NumPlateNotGood   int        `db:"num_plate_not_good" json:"num_plate_not_good"`
	Remarks           *string    `db:"remarks" json:"remarks"`
	StartAt           *time.Time `db:"start_at" json:"start_at"`
	FinishAt          *time.Time `db:"finish_at" json:"finish_at"`
}
