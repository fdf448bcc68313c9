// Package stockcards computes per-shift stock snapshots for the four CTP
// consumable ledgers (Fuji/Saphira x plate/chemical). A card read is never a
// cache hit: every query recomputes opening balance, usage and closing
// balance from the upstream records before returning rows.
package stockcards

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

// Shift handover boundaries. Shift 1 runs 06:45-18:45, shift 2 runs from
// 18:45 past midnight until the next day's 06:45.
const (
	shiftStartHour   = 6
	shiftStartMinute = 45
	shiftSwapHour    = 18
	shiftSwapMinute  = 45
)

type CatalogItem struct {
	Code   string
	Name   string
	PerBox *int
}

// Card binds one ledger table to its fixed item catalog, its usage source
// and its predecessor-lookup rule. The plate and chemical cards intentionally
// use different predecessor rules; see the lookup implementations below.
type Card struct {
	Table    string
	Brand    string
	Material string
	Catalog  []CatalogItem

	usage usageSource
	prior priorLookup
}

func (c Card) catalogItem(code string) (CatalogItem, bool) {
	for _, item := range c.Catalog {
		if item.Code == code {
			return item, true
		}
	}
	return CatalogItem{}, false
}

type usageSource interface {
	Usage(tx *goqu.TxDatabase, store Store, tanggal time.Time, shift string, item CatalogItem) (float64, error)
}

type priorLookup interface {
	Opening(tx *goqu.TxDatabase, store Store, table string, tanggal time.Time, shift, itemCode string) (float64, error)
}

// plateUsage sums good + not-good plate counts from the production logs for
// the card date, the matching "Shift N" label and the item's material name.
type plateUsage struct{}

func (plateUsage) Usage(tx *goqu.TxDatabase, store Store, tanggal time.Time, shift string, item CatalogItem) (float64, error) {
	return store.SumPlateUsage(tx, tanggal, "Shift "+shift, item.Name)
}

// chemicalUsage sums requisition quantities whose creation timestamp falls
// inside the shift window. Shift 2 spans midnight into the next day.
type chemicalUsage struct{}

func (chemicalUsage) Usage(tx *goqu.TxDatabase, store Store, tanggal time.Time, shift string, item CatalogItem) (float64, error) {
	from, to, ok := ShiftWindow(tanggal, shift)
	if !ok {
		return 0, nil
	}
	return store.SumChemicalUsage(tx, item.Code, from, to)
}

// ShiftWindow returns the half-open consumption window [from, to) for a
// card date and shift. Unknown shift values yield ok=false and zero usage.
func ShiftWindow(tanggal time.Time, shift string) (from, to time.Time, ok bool) {
	day := time.Date(tanggal.Year(), tanggal.Month(), tanggal.Day(), 0, 0, 0, 0, tanggal.Location())
	start := day.Add(time.Duration(shiftStartHour)*time.Hour + time.Duration(shiftStartMinute)*time.Minute)
	swap := day.Add(time.Duration(shiftSwapHour)*time.Hour + time.Duration(shiftSwapMinute)*time.Minute)

	switch shift {
	case "1":
		return start, swap, true
	case "2":
		return swap, start.AddDate(0, 0, 1), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// latestPriorLookup finds the chronologically closest earlier row of the same
// item: any older date, or the lower shift on the same date. Used by the
// plate cards.
type latestPriorLookup struct{}

func (latestPriorLookup) Opening(tx *goqu.TxDatabase, store Store, table string, tanggal time.Time, shift, itemCode string) (float64, error) {
	closing, found, err := store.LatestPriorClosing(tx, table, tanggal, shift, itemCode)
	if err != nil || !found {
		return 0, err
	}
	return closing, nil
}

// handoverLookup resolves the fixed shift-handover chain used by the
// chemical cards: shift 2 opens from the same day's shift 1, shift 1 opens
// from the previous day's shift 2. Kept distinct from latestPriorLookup on
// purpose; the two card families have different handover semantics.
type handoverLookup struct{}

func (handoverLookup) Opening(tx *goqu.TxDatabase, store Store, table string, tanggal time.Time, shift, itemCode string) (float64, error) {
	var prevDate time.Time
	var prevShift string

	switch shift {
	case "2":
		prevDate, prevShift = tanggal, "1"
	case "1":
		prevDate, prevShift = tanggal.AddDate(0, 0, -1), "2"
	default:
		return 0, nil
	}

	closing, found, err := store.ClosingAt(tx, table, prevDate, prevShift, itemCode)
	if err != nil || !found {
		return 0, err
	}
	return closing, nil
}

func perBox(n int) *int { return &n }

// FujiPlateCard covers the Fuji plate stock card.
func FujiPlateCard() Card {
	return Card{
		Table:    "kartu_stock_fuji_plate",
		Brand:    "fuji",
		Material: "plate",
		Catalog: []CatalogItem{
			{Code: "FJ-1055", Name: "FUJI LH-PJE 1055 X 811 X 0.30", PerBox: perBox(30)},
			{Code: "FJ-1030", Name: "FUJI LH-PJE 1030 X 770 X 0.30", PerBox: perBox(30)},
			{Code: "FJ-745", Name: "FUJI LH-PJE 745 X 605 X 0.30", PerBox: perBox(50)},
			{Code: "FJ-665", Name: "FUJI LH-PJE 665 X 560 X 0.30", PerBox: perBox(50)},
		},
		usage: plateUsage{},
		prior: latestPriorLookup{},
	}
}

// SaphiraPlateCard covers the Saphira plate stock card.
func SaphiraPlateCard() Card {
	return Card{
		Table:    "kartu_stock_saphira_plate",
		Brand:    "saphira",
		Material: "plate",
		Catalog: []CatalogItem{
			{Code: "SP-1055", Name: "SAPHIRA PN 1055 X 811 X 0.30", PerBox: perBox(30)},
			{Code: "SP-1030", Name: "SAPHIRA PN 1030 X 770 X 0.30", PerBox: perBox(30)},
			{Code: "SP-745", Name: "SAPHIRA PN 745 X 605 X 0.30", PerBox: perBox(50)},
			{Code: "SP-665", Name: "SAPHIRA PN 665 X 560 X 0.30", PerBox: perBox(50)},
		},
		usage: plateUsage{},
		prior: latestPriorLookup{},
	}
}

// FujiChemicalCard covers the Fuji processor chemical stock card.
func FujiChemicalCard() Card {
	return Card{
		Table:    "kartu_stock_fuji_chemical",
		Brand:    "fuji",
		Material: "chemical",
		Catalog: []CatalogItem{
			{Code: "FC-DEV", Name: "FUJI DEVELOPER LH-D2"},
			{Code: "FC-REP", Name: "FUJI REPLENISHER LH-D2R"},
			{Code: "FC-GUM", Name: "FUJI GUM GU-7"},
			{Code: "FC-FIN", Name: "FUJI FINISHER FP-2W"},
		},
		usage: chemicalUsage{},
		prior: handoverLookup{},
	}
}

// SaphiraChemicalCard covers the Saphira processor chemical stock card.
func SaphiraChemicalCard() Card {
	return Card{
		Table:    "kartu_stock_saphira_chemical",
		Brand:    "saphira",
		Material: "chemical",
		Catalog: []CatalogItem{
			{Code: "SC-DEV", Name: "SAPHIRA DEVELOPER CTP N"},
			{Code: "SC-REP", Name: "SAPHIRA REPLENISHER CTP"},
			{Code: "SC-GUM", Name: "SAPHIRA GUM 6060"},
			{Code: "SC-CLN", Name: "SAPHIRA PLATE CLEANER"},
		},
		usage: chemicalUsage{},
		prior: handoverLookup{},
	}
}
