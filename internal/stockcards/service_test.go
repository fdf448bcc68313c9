package stockcards

import (
	"errors"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) RunInTransaction(fn func(tx *goqu.TxDatabase) error) error {
	args := m.Called()
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(nil)
}

func (m *MockStore) Row(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, itemCode string) (*models.StockCardRow, error) {
	args := m.Called(table, tanggal, shift, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockCardRow), args.Error(1)
}

func (m *MockStore) InsertRowIfAbsent(tx *goqu.TxDatabase, table string, row models.StockCardRow) error {
	args := m.Called(table, row)
	return args.Error(0)
}

func (m *MockStore) InsertRow(tx *goqu.TxDatabase, table string, row models.StockCardRow) error {
	args := m.Called(table, row)
	return args.Error(0)
}

func (m *MockStore) UpdateRow(tx *goqu.TxDatabase, table string, row models.StockCardRow) error {
	args := m.Called(table, row)
	return args.Error(0)
}

func (m *MockStore) LatestPriorClosing(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, itemCode string) (float64, bool, error) {
	args := m.Called(table, tanggal, shift, itemCode)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *MockStore) ClosingAt(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, itemCode string) (float64, bool, error) {
	args := m.Called(table, tanggal, shift, itemCode)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *MockStore) SumPlateUsage(tx *goqu.TxDatabase, tanggal time.Time, ctpShift, material string) (float64, error) {
	args := m.Called(tanggal, ctpShift, material)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStore) SumChemicalUsage(tx *goqu.TxDatabase, itemCode string, from, to time.Time) (float64, error) {
	args := m.Called(itemCode, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStore) StampConfirmed(tx *goqu.TxDatabase, table string, tanggal time.Time, shift, confirmedBy string, confirmedAt time.Time) error {
	args := m.Called(table, tanggal, shift, confirmedBy)
	return args.Error(0)
}

func testPlateCard() Card {
	return Card{
		Table:    "kartu_stock_fuji_plate",
		Brand:    "fuji",
		Material: "plate",
		Catalog: []CatalogItem{
			{Code: "FJ-1055", Name: "FUJI LH-PJE 1055 X 811 X 0.30", PerBox: perBox(30)},
		},
		usage: plateUsage{},
		prior: latestPriorLookup{},
	}
}

func testChemicalCard() Card {
	return Card{
		Table:    "kartu_stock_fuji_chemical",
		Brand:    "fuji",
		Material: "chemical",
		Catalog: []CatalogItem{
			{Code: "FC-DEV", Name: "FUJI DEVELOPER LH-D2"},
		},
		usage: chemicalUsage{},
		prior: handoverLookup{},
	}
}

func TestGetOrCreateStocksRecomputesBalance(t *testing.T) {
	store := new(MockStore)
	service := NewService(testPlateCard(), store)
	tanggal := date(2025, 3, 10)

	store.On("RunInTransaction").Return(nil)
	store.On("LatestPriorClosing", "kartu_stock_fuji_plate", tanggal, "1", "FJ-1055").
		Return(100.0, true, nil)
	store.On("InsertRowIfAbsent", "kartu_stock_fuji_plate", mock.Anything).Return(nil)
	store.On("Row", "kartu_stock_fuji_plate", tanggal, "1", "FJ-1055").
		Return(&models.StockCardRow{
			ID:             12,
			Tanggal:        tanggal,
			Shift:          "1",
			ItemCode:       "FJ-1055",
			JumlahIncoming: 30,
		}, nil)
	store.On("SumPlateUsage", tanggal, "Shift 1", "FUJI LH-PJE 1055 X 811 X 0.30").
		Return(8.0, nil)
	store.On("UpdateRow", "kartu_stock_fuji_plate", mock.Anything).Return(nil)

	rows, err := service.GetOrCreateStocks(tanggal, "1")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 100.0, row.JumlahStockAwal)
	assert.Equal(t, 8.0, row.JumlahPemakaian)
	assert.Equal(t, 30.0, row.JumlahIncoming)
	assert.Equal(t, row.JumlahStockAwal-row.JumlahPemakaian+row.JumlahIncoming, row.JumlahStockAkhir)
	store.AssertExpectations(t)
}

func TestGetOrCreateStocksFirstEverRowOpensAtZero(t *testing.T) {
	store := new(MockStore)
	service := NewService(testPlateCard(), store)
	tanggal := date(2025, 3, 10)

	store.On("RunInTransaction").Return(nil)
	store.On("LatestPriorClosing", "kartu_stock_fuji_plate", tanggal, "1", "FJ-1055").
		Return(0.0, false, nil)
	store.On("InsertRowIfAbsent", "kartu_stock_fuji_plate", mock.MatchedBy(func(row models.StockCardRow) bool {
		return row.JumlahStockAwal == 0 && row.JumlahStockAkhir == 0
	})).Return(nil)
	store.On("Row", "kartu_stock_fuji_plate", tanggal, "1", "FJ-1055").
		Return(&models.StockCardRow{ID: 1, ItemCode: "FJ-1055"}, nil)
	store.On("SumPlateUsage", tanggal, "Shift 1", "FUJI LH-PJE 1055 X 811 X 0.30").
		Return(0.0, nil)
	store.On("UpdateRow", "kartu_stock_fuji_plate", mock.Anything).Return(nil)

	rows, err := service.GetOrCreateStocks(tanggal, "1")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].JumlahStockAkhir)
	store.AssertExpectations(t)
}

func TestChemicalCardUsesHandoverAndShiftWindow(t *testing.T) {
	store := new(MockStore)
	service := NewService(testChemicalCard(), store)
	tanggal := date(2025, 3, 10)

	// Shift 1 opens from the previous day's shift 2 closing balance.
	store.On("RunInTransaction").Return(nil)
	store.On("ClosingAt", "kartu_stock_fuji_chemical", date(2025, 3, 9), "2", "FC-DEV").
		Return(40.0, true, nil)
	store.On("InsertRowIfAbsent", "kartu_stock_fuji_chemical", mock.Anything).Return(nil)
	store.On("Row", "kartu_stock_fuji_chemical", tanggal, "1", "FC-DEV").
		Return(&models.StockCardRow{ID: 3, ItemCode: "FC-DEV"}, nil)
	store.On("SumChemicalUsage", "FC-DEV",
		time.Date(2025, 3, 10, 6, 45, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC)).
		Return(12.5, nil)
	store.On("UpdateRow", "kartu_stock_fuji_chemical", mock.Anything).Return(nil)

	rows, err := service.GetOrCreateStocks(tanggal, "1")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 40.0, rows[0].JumlahStockAwal)
	assert.Equal(t, 12.5, rows[0].JumlahPemakaian)
	assert.Equal(t, 27.5, rows[0].JumlahStockAkhir)
	store.AssertExpectations(t)
}

func TestChemicalShift2OpensFromSameDayShift1(t *testing.T) {
	store := new(MockStore)
	service := NewService(testChemicalCard(), store)
	tanggal := date(2025, 3, 10)

	store.On("RunInTransaction").Return(nil)
	store.On("ClosingAt", "kartu_stock_fuji_chemical", tanggal, "1", "FC-DEV").
		Return(27.5, true, nil)
	store.On("InsertRowIfAbsent", "kartu_stock_fuji_chemical", mock.Anything).Return(nil)
	store.On("Row", "kartu_stock_fuji_chemical", tanggal, "2", "FC-DEV").
		Return(&models.StockCardRow{ID: 4, ItemCode: "FC-DEV"}, nil)
	store.On("SumChemicalUsage", "FC-DEV",
		time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 6, 45, 0, 0, time.UTC)).
		Return(5.0, nil)
	store.On("UpdateRow", "kartu_stock_fuji_chemical", mock.Anything).Return(nil)

	rows, err := service.GetOrCreateStocks(tanggal, "2")

	assert.NoError(t, err)
	assert.Equal(t, 27.5, rows[0].JumlahStockAwal)
	store.AssertExpectations(t)
}

func TestRecordIncomingOnExistingRow(t *testing.T) {
	store := new(MockStore)
	service := NewService(testPlateCard(), store)
	tanggal := date(2025, 3, 10)

	store.On("RunInTransaction").Return(nil)
	store.On("Row", "kartu_stock_fuji_plate", tanggal, "1", "FJ-1055").
		Return(&models.StockCardRow{
			ID:               12,
			ItemCode:         "FJ-1055",
			JumlahStockAwal:  100,
			JumlahPemakaian:  8,
			JumlahIncoming:   2,
			JumlahStockAkhir: 94,
		}, nil)
	store.On("UpdateRow", "kartu_stock_fuji_plate", mock.MatchedBy(func(row models.StockCardRow) bool {
		// Usage stays untouched; incoming and closing both grow by the amount.
		return row.JumlahPemakaian == 8 && row.JumlahIncoming == 7 && row.JumlahStockAkhir == 99
	})).Return(nil)

	row, err := service.RecordIncoming(tanggal, "1", "FJ-1055", 5)

	assert.NoError(t, err)
	assert.Equal(t, 7.0, row.JumlahIncoming)
	assert.Equal(t, 99.0, row.JumlahStockAkhir)
	store.AssertExpectations(t)
}

func TestRecordIncomingCreatesMissingRow(t *testing.T) {
	store := new(MockStore)
	service := NewService(testPlateCard(), store)
	tanggal := date(2025, 3, 10)

	store.On("RunInTransaction").Return(nil)
	store.On("Row", "kartu_stock_fuji_plate", tanggal, "2", "FJ-1055").
		Return(nil, nil)
	store.On("InsertRow", "kartu_stock_fuji_plate", mock.MatchedBy(func(row models.StockCardRow) bool {
		return row.JumlahStockAwal == 0 && row.JumlahIncoming == 5 && row.JumlahStockAkhir == 5
	})).Return(nil)

	row, err := service.RecordIncoming(tanggal, "2", "FJ-1055", 5)

	assert.NoError(t, err)
	assert.Equal(t, 5.0, row.JumlahStockAkhir)
	store.AssertExpectations(t)
}

func TestRecordIncomingRejectsUnknownItem(t *testing.T) {
	store := new(MockStore)
	service := NewService(testPlateCard(), store)

	_, err := service.RecordIncoming(date(2025, 3, 10), "1", "NOT-IN-CATALOG", 5)

	assert.ErrorIs(t, err, ErrUnknownItem)
	store.AssertNotCalled(t, "RunInTransaction")
}

func TestConfirmRecomputesThenStamps(t *testing.T) {
	store := new(MockStore)
	service := NewService(testPlateCard(), store)
	tanggal := date(2025, 3, 10)

	store.On("RunInTransaction").Return(nil)
	store.On("Row", "kartu_stock_fuji_plate", tanggal, "1", "FJ-1055").
		Return(&models.StockCardRow{ID: 12, ItemCode: "FJ-1055"}, nil)
	store.On("LatestPriorClosing", "kartu_stock_fuji_plate", tanggal, "1", "FJ-1055").
		Return(100.0, true, nil)
	store.On("SumPlateUsage", tanggal, "Shift 1", "FUJI LH-PJE 1055 X 811 X 0.30").
		Return(8.0, nil)
	store.On("UpdateRow", "kartu_stock_fuji_plate", mock.Anything).Return(nil)
	store.On("StampConfirmed", "kartu_stock_fuji_plate", tanggal, "1", "siti").Return(nil)

	err := service.Confirm(tanggal, "1", "siti")

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestGetOrCreateStocksPropagatesStoreErrors(t *testing.T) {
	store := new(MockStore)
	service := NewService(testPlateCard(), store)
	tanggal := date(2025, 3, 10)

	store.On("RunInTransaction").Return(nil)
	store.On("LatestPriorClosing", "kartu_stock_fuji_plate", tanggal, "1", "FJ-1055").
		Return(0.0, false, errors.New("connection reset"))

	_, err := service.GetOrCreateStocks(tanggal, "1")

	assert.EqualError(t, err, "connection reset")
}
