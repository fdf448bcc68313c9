package stockcards

import (
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

var ErrUnknownItem = errors.New("unknown item code")

// Service drives one stock card. The four concrete cards share this engine
// and differ only in catalog, usage source and predecessor rule.
type Service struct {
	card  Card
	store Store
}

func NewService(card Card, store Store) *Service {
	return &Service{card: card, store: store}
}

func (s *Service) Card() Card { return s.card }

// GetOrCreateStocks returns the full catalog's rows for (tanggal, shift).
// Missing rows are created with the predecessor's closing balance; all rows
// are then unconditionally recomputed and persisted before they are
// returned. Reading a card is a compute-and-persist, not a cache lookup.
func (s *Service) GetOrCreateStocks(tanggal time.Time, shift string) ([]models.StockCardRow, error) {
	var out []models.StockCardRow

	err := s.store.RunInTransaction(func(tx *goqu.TxDatabase) error {
		for _, item := range s.card.Catalog {
			opening, err := s.card.prior.Opening(tx, s.store, s.card.Table, tanggal, shift, item.Code)
			if err != nil {
				return err
			}

			row := models.StockCardRow{
				Tanggal:          tanggal,
				Shift:            shift,
				ItemCode:         item.Code,
				ItemName:         item.Name,
				JumlahStockAwal:  opening,
				JumlahStockAkhir: opening,
				JumlahPerBox:     item.PerBox,
			}
			if err := s.store.InsertRowIfAbsent(tx, s.card.Table, row); err != nil {
				return err
			}
		}

		rows, err := s.recomputeRows(tx, tanggal, shift)
		if err != nil {
			return err
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// recomputeRows refreshes opening balance, usage and closing balance of
// every catalog row for (tanggal, shift) and persists the result.
func (s *Service) recomputeRows(tx *goqu.TxDatabase, tanggal time.Time, shift string) ([]models.StockCardRow, error) {
	var out []models.StockCardRow

	for _, item := range s.card.Catalog {
		row, err := s.store.Row(tx, s.card.Table, tanggal, shift, item.Code)
		if err != nil {
			return nil, err
		}
		if row == nil {
			continue
		}

		opening, err := s.card.prior.Opening(tx, s.store, s.card.Table, tanggal, shift, item.Code)
		if err != nil {
			return nil, err
		}
		usage, err := s.card.usage.Usage(tx, s.store, tanggal, shift, item)
		if err != nil {
			return nil, err
		}

		row.Recompute(opening, usage)
		if err := s.store.UpdateRow(tx, s.card.Table, *row); err != nil {
			return nil, err
		}

		out = append(out, *row)
	}

	return out, nil
}

// RecordIncoming books received stock onto a row. An existing row keeps its
// derived usage untouched; the incoming amount is simply added to both
// jumlah_incoming and jumlah_stock_akhir. A missing row starts from zero.
func (s *Service) RecordIncoming(tanggal time.Time, shift, itemCode string, amount float64) (*models.StockCardRow, error) {
	item, ok := s.card.catalogItem(itemCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, itemCode)
	}

	var out models.StockCardRow

	err := s.store.RunInTransaction(func(tx *goqu.TxDatabase) error {
		row, err := s.store.Row(tx, s.card.Table, tanggal, shift, itemCode)
		if err != nil {
			return err
		}

		if row != nil {
			row.JumlahIncoming += amount
			row.JumlahStockAkhir += amount
			if err := s.store.UpdateRow(tx, s.card.Table, *row); err != nil {
				return err
			}
			out = *row
			return nil
		}

		created := models.StockCardRow{
			Tanggal:          tanggal,
			Shift:            shift,
			ItemCode:         item.Code,
			ItemName:         item.Name,
			JumlahStockAwal:  0,
			JumlahIncoming:   amount,
			JumlahStockAkhir: amount,
			JumlahPerBox:     item.PerBox,
		}
		if err := s.store.InsertRow(tx, s.card.Table, created); err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Confirm recomputes the shift's rows one final time and stamps them with
// the confirming operator. Confirmation marks the handover as reconciled;
// it does not freeze the rows against later recomputes.
func (s *Service) Confirm(tanggal time.Time, shift, confirmedBy string) error {
	return s.store.RunInTransaction(func(tx *goqu.TxDatabase) error {
		if _, err := s.recomputeRows(tx, tanggal, shift); err != nil {
			return err
		}
		return s.store.StampConfirmed(tx, s.card.Table, tanggal, shift, confirmedBy, time.Now())
	})
}
