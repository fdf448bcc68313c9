package adjustments

import (
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/repository"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/workflow"
	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

var ErrNotFound = errors.New("adjustment request not found")

// AdjustmentService orchestrates the adjustment workflow: load the item,
// apply the transition, persist - all inside one transaction. Guard
// violations surface as workflow.ErrInvalidTransition and roll everything
// back.
type AdjustmentService struct {
	ar AdjustmentRepository
}

func NewService(ar AdjustmentRepository) *AdjustmentService {
	return &AdjustmentService{ar: ar}
}

// Create stamps machine_off_at with the submission time and selects the
// initial queue from remarks and the epson flag.
func (s *AdjustmentService) Create(req CreateAdjustmentRequest) (*models.AdjustmentRequest, error) {
	now := time.Now()

	item := &models.AdjustmentRequest{
		Tanggal:      req.Tanggal,
		MesinCetak:   req.MesinCetak,
		WoNumber:     req.WoNumber,
		McNumber:     req.McNumber,
		ItemName:     req.ItemName,
		Pic:          req.Pic,
		Remarks:      req.Remarks,
		IsEpson:      req.IsEpson,
		Status:       workflow.InitialAdjustmentStatus(req.Remarks, req.IsEpson),
		MachineOffAt: &now,
	}

	err := s.ar.RunInTransaction(func(tx *goqu.TxDatabase) error {
		id, err := s.ar.Insert(tx, item)
		if err != nil {
			return err
		}
		item.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s *AdjustmentService) Get(id int) (*models.AdjustmentRequest, error) {
	item, err := s.ar.Get(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *AdjustmentService) List(conditions repository.QueryBuilder) ([]models.AdjustmentRequest, error) {
	return s.ar.List(conditions)
}

// transition loads the item, applies fn and persists the mutated record.
func (s *AdjustmentService) transition(id int, fn func(*models.AdjustmentRequest) error) (models.Status, error) {
	var status models.Status

	err := s.ar.RunInTransaction(func(tx *goqu.TxDatabase) error {
		item, err := s.ar.GetTx(tx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrNotFound
		}
		if err := fn(item); err != nil {
			return err
		}
		if err := s.ar.Update(tx, item); err != nil {
			return err
		}
		status = item.Status
		return nil
	})
	if err != nil {
		return "", err
	}

	return status, nil
}

func (s *AdjustmentService) StartPdnd(id int, actor string, reprocess bool) (models.Status, error) {
	return s.transition(id, func(item *models.AdjustmentRequest) error {
		return workflow.StartPdnd(item, actor, reprocess)
	})
}

func (s *AdjustmentService) FinishPdnd(id int) (models.Status, error) {
	return s.transition(id, workflow.FinishPdnd)
}

func (s *AdjustmentService) StartDesign(id int, actor string, reprocess bool) (models.Status, error) {
	return s.transition(id, func(item *models.AdjustmentRequest) error {
		return workflow.StartDesign(item, actor, reprocess)
	})
}

func (s *AdjustmentService) FinishDesign(id int) (models.Status, error) {
	return s.transition(id, workflow.FinishDesign)
}

func (s *AdjustmentService) StartAdjustment(id int, actor string, reprocess bool) (models.Status, error) {
	return s.transition(id, func(item *models.AdjustmentRequest) error {
		return workflow.StartAdjustment(item, actor, reprocess)
	})
}

func (s *AdjustmentService) FinishAdjustment(id int) (models.Status, error) {
	return s.transition(id, workflow.FinishAdjustment)
}

func (s *AdjustmentService) DeclineMounting(id int, actor, reason string) (models.Status, error) {
	return s.transition(id, func(item *models.AdjustmentRequest) error {
		return workflow.DeclineMounting(item, actor, reason)
	})
}

func (s *AdjustmentService) DeclineCtp(id int, actor, reason string) (models.Status, error) {
	return s.transition(id, func(item *models.AdjustmentRequest) error {
		return workflow.DeclineCtpAdjustment(item, actor, reason)
	})
}

func (s *AdjustmentService) Cancel(id int, actor, reason string) (models.Status, error) {
	return s.transition(id, func(item *models.AdjustmentRequest) error {
		return workflow.CancelAdjustment(item, actor, reason)
	})
}

func (s *AdjustmentService) StartCtp(id int, actor, group string) (models.Status, error) {
	return s.transition(id, func(item *models.AdjustmentRequest) error {
		return workflow.StartCtpAdjustment(item, actor, group)
	})
}

func (s *AdjustmentService) FinishCtp(id int) (models.Status, error) {
	return s.transition(id, workflow.FinishCtpAdjustment)
}

func (s *AdjustmentService) Deliver(id int) (models.Status, error) {
	return s.transition(id, workflow.DeliverPlateAdjustment)
}
