package models

import "time"

// ChemicalBon is a chemical requisition issued by the CTP division.
// CreatedAt (not Tanggal) decides which shift window the consumption
// belongs to, since shift 2 runs past midnight.
type ChemicalBon struct {
	ID        int       `db:"id" json:"id"`
	Tanggal   time.Time `db:"tanggal" json:"tanggal"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ItemCode  string    `db:"item_code" json:"item_code"`
	ItemName  string    `db:"item_name" json:"item_name"`
	Jumlah    float64   `db:"jumlah" json:"jumlah"`
	Divisi    string    `db:"divisi" json:"divisi"`
	Pic       string    `db:"pic" json:"pic"`
}
