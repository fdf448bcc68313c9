package adjustments

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/repository"
	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

type AdjustmentRepository interface {
	RunInTransaction(fn func(tx *goqu.TxDatabase) error) error
	Insert(tx *goqu.TxDatabase, req *models.AdjustmentRequest) (int, error)
	Get(id int) (*models.AdjustmentRequest, error)
	GetTx(tx *goqu.TxDatabase, id int) (*models.AdjustmentRequest, error)
	Update(tx *goqu.TxDatabase, req *models.AdjustmentRequest) error
	List(conditions repository.QueryBuilder) ([]models.AdjustmentRequest, error)
	CountByStatuses(statuses []models.Status) (int, error)
}

type adjustmentRepository struct {
	repo *repository.Repository
}

func NewRepository(r *repository.Repository) AdjustmentRepository {
	return &adjustmentRepository{repo: r}
}

const table = "plate_adjustment_requests"

func (r *adjustmentRepository) RunInTransaction(fn func(tx *goqu.TxDatabase) error) error {
	return repository.WithTransaction(r.repo.GoquDBWrapper, fn)
}

func (r *adjustmentRepository) Insert(tx *goqu.TxDatabase, req *models.AdjustmentRequest) (int, error) {
	query := tx.Insert(table).
		Rows(goqu.Record{
			"tanggal":        req.Tanggal,
			"mesin_cetak":    req.MesinCetak,
			"wo_number":      req.WoNumber,
			"mc_number":      req.McNumber,
			"item_name":      req.ItemName,
			"pic":            req.Pic,
			"remarks":        req.Remarks,
			"is_epson":       req.IsEpson,
			"status":         req.Status,
			"machine_off_at": req.MachineOffAt,
		}).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanVal(&id); err != nil {
		return 0, fmt.Errorf("failed to insert adjustment request: %w", err)
	}

	return id, nil
}

func (r *adjustmentRepository) Get(id int) (*models.AdjustmentRequest, error) {
	var req models.AdjustmentRequest

	found, err := r.repo.GoquDBWrapper.From(table).
		Where(goqu.Ex{"id": id}).
		Executor().
		ScanStruct(&req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch adjustment request %d: %w", id, err)
	}
	if !found {
		return nil, nil
	}

	return &req, nil
}

func (r *adjustmentRepository) GetTx(tx *goqu.TxDatabase, id int) (*models.AdjustmentRequest, error) {
	var req models.AdjustmentRequest

	found, err := tx.From(table).
		Where(goqu.Ex{"id": id}).
		Executor().
		ScanStruct(&req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch adjustment request %d: %w", id, err)
	}
	if !found {
		return nil, nil
	}

	return &req, nil
}

func (r *adjustmentRepository) Update(tx *goqu.TxDatabase, req *models.AdjustmentRequest) error {
	query := tx.Update(table).
		Set(goqu.Record{
			"status":               req.Status,
			"pdnd_start_at":        req.PdndStartAt,
			"pdnd_finish_at":       req.PdndFinishAt,
			"pdnd_by":              req.PdndBy,
			"design_start_at":      req.DesignStartAt,
			"design_finish_at":     req.DesignFinishAt,
			"design_by":            req.DesignBy,
			"adjustment_start_at":  req.AdjustmentStartAt,
			"adjustment_finish_at": req.AdjustmentFinishAt,
			"adjustment_by":        req.AdjustmentBy,
			"plate_start_at":       req.PlateStartAt,
			"plate_finish_at":      req.PlateFinishAt,
			"ctp_by":               req.CtpBy,
			"ctp_group":            req.CtpGroup,
			"plate_delivered_at":   req.PlateDeliveredAt,
			"is_declined":          req.IsDeclined,
			"decline_reason":       req.DeclineReason,
			"declined_by":          req.DeclinedBy,
			"declined_at":          req.DeclinedAt,
			"cancellation_reason":  req.CancellationReason,
			"cancelled_by":         req.CancelledBy,
			"cancelled_at":         req.CancelledAt,
		}).
		Where(goqu.Ex{"id": req.ID})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to update adjustment request %d: %w", req.ID, err)
	}

	return nil
}

func (r *adjustmentRepository) List(conditions repository.QueryBuilder) ([]models.AdjustmentRequest, error) {
	var reqs []models.AdjustmentRequest

	query := r.repo.GoquDBWrapper.From(table).
		Order(goqu.C("tanggal").Desc(), goqu.C("id").Desc())

	if conditions != nil && conditions.HasConditions() {
		query = query.Where(conditions.BuildConditions(nil))
	}

	if err := query.Executor().ScanStructs(&reqs); err != nil {
		return nil, fmt.Errorf("failed to list adjustment requests: %w", err)
	}

	return reqs, nil
}

func (r *adjustmentRepository) CountByStatuses(statuses []models.Status) (int, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, s.String())
	}

	var count int
	query := r.repo.GoquDBWrapper.From(table).
		Select(goqu.COUNT("id")).
		Where(goqu.C("status").In(values))

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count adjustment requests: %w", err)
	}

	return count, nil
}
