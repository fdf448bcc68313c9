package stockcards

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/repository"
	custom_error "github.com/prepr3ss/prepress-web-center-sub001/pkg/errors"
	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

// Store is the persistence surface the card service needs. Row lookups and
// usage aggregates always run inside the transaction opened by
// RunInTransaction so a card read commits as one unit.
type Store interface {
	RunInTransaction(fn func(tx *goqu.TxDatabase) error) error
	Row(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, itemCode string) (*models.StockCardRow, error)
	InsertRowIfAbsent(tx *goqu.TxDatabase, table string, row models.StockCardRow) error
	InsertRow(tx *goqu.TxDatabase, table string, row models.StockCardRow) error
	UpdateRow(tx *goqu.TxDatabase, table string, row models.StockCardRow) error
	LatestPriorClosing(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, itemCode string) (float64, bool, error)
	ClosingAt(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, itemCode string) (float64, bool, error)
	SumPlateUsage(tx *goqu.TxDatabase, tanggal time.Time, ctpShift, material string) (float64, error)
	SumChemicalUsage(tx *goqu.TxDatabase, itemCode string, from, to time.Time) (float64, error)
	StampConfirmed(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, confirmedBy string, confirmedAt time.Time) error
}

type cardRepository struct {
	repo *repository.Repository
}

func NewCardRepository(r *repository.Repository) Store {
	return &cardRepository{repo: r}
}

func (r *cardRepository) RunInTransaction(fn func(tx *goqu.TxDatabase) error) error {
	return repository.WithTransaction(r.repo.GoquDBWrapper, fn)
}

func (r *cardRepository) Row(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, itemCode string) (*models.StockCardRow, error) {
	var row models.StockCardRow

	found, err := tx.From(table).
		Where(goqu.Ex{"tanggal": tanggal, "shift": shift, "item_code": itemCode}).
		Executor().
		ScanStruct(&row)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock card row from %s: %w", table, err)
	}
	if !found {
		return nil, nil
	}

	return &row, nil
}

// InsertRowIfAbsent relies on the unique (tanggal, shift, item_code) key so
// concurrent first reads of the same shift cannot produce duplicate rows.
func (r *cardRepository) InsertRowIfAbsent(tx *goqu.TxDatabase, table string, row models.StockCardRow) error {
	query := tx.Insert(table).
		Rows(goqu.Record{
			"tanggal":            row.Tanggal,
			"shift":              row.Shift,
			"item_code":          row.ItemCode,
			"item_name":          row.ItemName,
			"jumlah_stock_awal":  row.JumlahStockAwal,
			"jumlah_pemakaian":   row.JumlahPemakaian,
			"jumlah_incoming":    row.JumlahIncoming,
			"jumlah_stock_akhir": row.JumlahStockAkhir,
			"jumlah_per_box":     row.JumlahPerBox,
		}).
		OnConflict(goqu.DoNothing())

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert stock card row into %s: %w", table, err)
	}

	return nil
}

// InsertRow is the strict variant used when booking incoming stock onto a
// row the caller believes is absent. A concurrent create must surface as a
// unique violation, not vanish into DO NOTHING.
func (r *cardRepository) InsertRow(tx *goqu.TxDatabase, table string, row models.StockCardRow) error {
	query := tx.Insert(table).
		Rows(goqu.Record{
			"tanggal":            row.Tanggal,
			"shift":              row.Shift,
			"item_code":          row.ItemCode,
			"item_name":          row.ItemName,
			"jumlah_stock_awal":  row.JumlahStockAwal,
			"jumlah_pemakaian":   row.JumlahPemakaian,
			"jumlah_incoming":    row.JumlahIncoming,
			"jumlah_stock_akhir": row.JumlahStockAkhir,
			"jumlah_per_box":     row.JumlahPerBox,
		})

	if _, err := query.Executor().Exec(); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("Stock card row already exists for this shift", string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert stock card row into %s: %w", table, err)
	}

	return nil
}

func (r *cardRepository) UpdateRow(tx *goqu.TxDatabase, table string, row models.StockCardRow) error {
	query := tx.Update(table).
		Set(goqu.Record{
			"jumlah_stock_awal":  row.JumlahStockAwal,
			"jumlah_pemakaian":   row.JumlahPemakaian,
			"jumlah_incoming":    row.JumlahIncoming,
			"jumlah_stock_akhir": row.JumlahStockAkhir,
		}).
		Where(goqu.Ex{"id": row.ID})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to update stock card row %d in %s: %w", row.ID, table, err)
	}

	return nil
}

func (r *cardRepository) LatestPriorClosing(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, itemCode string) (float64, bool, error) {
	var closing float64

	query := tx.From(table).
		Select("jumlah_stock_akhir").
		Where(
			goqu.C("item_code").Eq(itemCode),
			goqu.Or(
				goqu.C("tanggal").Lt(tanggal),
				goqu.And(goqu.C("tanggal").Eq(tanggal), goqu.C("shift").Lt(shift)),
			),
		).
		Order(goqu.C("tanggal").Desc(), goqu.C("shift").Desc()).
		Limit(1)

	found, err := query.Executor().ScanVal(&closing)
	if err != nil {
		return 0, false, fmt.Errorf("failed to fetch prior closing balance from %s: %w", table, err)
	}

	return closing, found, nil
}

func (r *cardRepository) ClosingAt(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, itemCode string) (float64, bool, error) {
	var closing float64

	query := tx.From(table).
		Select("jumlah_stock_akhir").
		Where(goqu.Ex{"tanggal": tanggal, "shift": shift, "item_code": itemCode})

	found, err := query.Executor().ScanVal(&closing)
	if err != nil {
		return 0, false, fmt.Errorf("failed to fetch closing balance from %s: %w", table, err)
	}

	return closing, found, nil
}

func (r *cardRepository) SumPlateUsage(tx *goqu.TxDatabase, tanggal time.Time, ctpShift, material string) (float64, error) {
	var total float64

	query := tx.From("ctp_production_logs").
		Select(goqu.COALESCE(goqu.SUM(goqu.L("num_plate_good + num_plate_not_good")), 0)).
		Where(goqu.Ex{
			"log_date":            tanggal,
			"ctp_shift":           ctpShift,
			"plate_type_material": material,
		})

	if _, err := query.Executor().ScanVal(&total); err != nil {
		return 0, fmt.Errorf("failed to sum plate usage: %w", err)
	}

	return total, nil
}

func (r *cardRepository) SumChemicalUsage(tx *goqu.TxDatabase, itemCode string, from, to time.Time) (float64, error) {
	var total float64

	query := tx.From("chemical_bon_ctp").
		Select(goqu.COALESCE(goqu.SUM("jumlah"), 0)).
		Where(
			goqu.C("item_code").Eq(itemCode),
			goqu.C("created_at").Gte(from),
			goqu.C("created_at").Lt(to),
		)

	if _, err := query.Executor().ScanVal(&total); err != nil {
		return 0, fmt.Errorf("failed to sum chemical usage: %w", err)
	}

	return total, nil
}

func (r *cardRepository) StampConfirmed(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, confirmedBy string, confirmedAt time.Time) error {
	query := tx.Update(table).
		Set(goqu.Record{
			"confirmed_at": confirmedAt,
			"confirmed_by": confirmedBy,
		}).
		Where(goqu.Ex{"tanggal": tanggal, "shift": shift})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to confirm stock card %s %s shift %s: %w", table, tanggal.Format("2006-01-02"), shift, err)
	}

	return nil
}
