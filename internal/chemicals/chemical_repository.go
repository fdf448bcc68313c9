package chemicals

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/repository"
	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

type ChemicalRepository interface {
	Insert(bon *models.ChemicalBon) (int, error)
	List(tanggal *time.Time, itemCode string) ([]models.ChemicalBon, error)
}

type chemicalRepository struct {
	repo *repository.Repository
}

func NewRepository(r *repository.Repository) ChemicalRepository {
	return &chemicalRepository{repo: r}
}

const table = "chemical_bon_ctp"

func (r *chemicalRepository) Insert(bon *models.ChemicalBon) (int, error) {
	query := r.repo.GoquDBWrapper.Insert(table).
		Rows(goqu.Record{
			"tanggal":    bon.Tanggal,
			"created_at": bon.CreatedAt,
			"item_code":  bon.ItemCode,
			"item_name":  bon.ItemName,
			"jumlah":     bon.Jumlah,
			"divisi":     bon.Divisi,
			"pic":        bon.Pic,
		}).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanVal(&id); err != nil {
		return 0, fmt.Errorf("failed to insert chemical bon: %w", err)
	}

	return id, nil
}

func (r *chemicalRepository) List(tanggal *time.Time, itemCode string) ([]models.ChemicalBon, error) {
	var bons []models.ChemicalBon

	query := r.repo.GoquDBWrapper.From(table).
		Order(goqu.C("created_at").Desc())

	if tanggal != nil {
		query = query.Where(goqu.Ex{"tanggal": *tanggal})
	}
	if itemCode != "" {
		query = query.Where(goqu.Ex{"item_code": itemCode})
	}

	if err := query.Executor().ScanStructs(&bons); err != nil {
		return nil, fmt.Errorf("failed to list chemical bons: %w", err)
	}

	return bons, nil
}
