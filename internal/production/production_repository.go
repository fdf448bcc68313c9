package production

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/repository"
	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

type ProductionRepository interface {
	Insert(log *models.ProductionLog) (int, error)
	List(logDate *time.Time, ctpShift string) ([]models.ProductionLog, error)
}

type productionRepository struct {
	repo *repository.Repository
}

func NewRepository(r *repository.Repository) ProductionRepository {
	return &productionRepository{repo: r}
}

const table = "ctp_production_logs"

func (r *productionRepository) Insert(log *models.ProductionLog) (int, error) {
	query := r.repo.GoquDBWrapper.Insert(table).
		Rows(goqu.Record{
			"log_date":            log.LogDate,
			"ctp_shift":           log.CtpShift,
			"ctp_group":           log.CtpGroup,
			"ctp_pic":             log.CtpPic,
			"mesin_cetak":         log.MesinCetak,
			"wo_number":           log.WoNumber,
			"mc_number":           log.McNumber,
			"item_name":           log.ItemName,
			"plate_type_material": log.PlateTypeMaterial,
			"num_plate_good":      log.NumPlateGood,
			"num_plate_not_good":  log.NumPlateNotGood,
			"remarks":             log.Remarks,
			"start_at":            log.StartAt,
			"finish_at":           log.FinishAt,
		}).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanVal(&id); err != nil {
		return 0, fmt.Errorf("failed to insert production log: %w", err)
	}

	return id, nil
}

func (r *productionRepository) List(logDate *time.Time, ctpShift string) ([]models.ProductionLog, error) {
	var logs []models.ProductionLog

	query := r.repo.GoquDBWrapper.From(table).
		Order(goqu.C("log_date").Desc(), goqu.C("id").Desc())

	if logDate != nil {
		query = query.Where(goqu.Ex{"log_date": *logDate})
	}
	if ctpShift != "" {
		query = query.Where(goqu.Ex{"ctp_shift": ctpShift})
	}

	if err := query.Executor().ScanStructs(&logs); err != nil {
		return nil, fmt.Errorf("failed to list production logs: %w", err)
	}

	return logs, nil
}
