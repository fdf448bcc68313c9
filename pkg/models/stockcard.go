package models

import "time"

// StockCardRow is one (tanggal, shift, item_code) snapshot in a shift stock
// card. Rows are recomputed on every read: jumlah_stock_akhir must equal
// jumlah_stock_awal - jumlah_pemakaian + jumlah_incoming after recompute.
type StockCardRow struct {
	ID       int       `db:"id" json:"id"`
	Tanggal  time.Time `db:"tanggal" json:"tanggal"`
	Shift    string    `db:"shift" json:"shift"`
	ItemCode string    `db:"item_code" json:"item_code"`
	ItemName string    `db:"item_name" json:"item_name"`

	JumlahStockAwal  float64 `db:"jumlah_stock_awal" json:"jumlah_stock_awal"`
	JumlahPemakaian  float64 `db:"jumlah_pemakaian" json:"jumlah_pemakaian"`
	JumlahIncoming   float64 `db:"jumlah_incoming" json:"jumlah_incoming"`
	JumlahStockAkhir float64 `db:"jumlah_stock_akhir" json:"jumlah_stock_akhir"`

	// Plate cards only; box/pcs display conversion.
	JumlahPerBox *int `db:"jumlah_per_box" json:"jumlah_per_box,omitempty"`

	ConfirmedAt *time.Time `db:"confirmed_at" json:"confirmed_at"`
	ConfirmedBy *string    `db:"confirmed_by" json:"confirmed_by"`
}

// Recompute applies the balance rule for a freshly derived opening balance
// and usage figure.
func (r *StockCardRow) Recompute(stockAwal, pemakaian float64) {
	r.JumlahStockAwal = stockAwal
	r.JumlahPemakaian = pemakaian
	r.JumlahStockAkhir = r.JumlahStockAwal - r.JumlahPemakaian + r.JumlahIncoming
}
