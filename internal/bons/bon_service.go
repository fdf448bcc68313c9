package bons

import (
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/repository"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/workflow"
	"github.com/prepr3ss/prepress-web-center-sub001/pkg/models"
)

var ErrNotFound = errors.New("bon request not found")

type BonService struct {
	br BonRepository
}

func NewService(br BonRepository) *BonService {
	return &BonService{br: br}
}

func (s *BonService) Create(req CreateBonRequest) (*models.BonRequest, error) {
	now := time.Now()

	item := &models.BonRequest{
		Tanggal:      req.Tanggal,
		MesinCetak:   req.MesinCetak,
		WoNumber:     req.WoNumber,
		McNumber:     req.McNumber,
		ItemName:     req.ItemName,
		Pic:          req.Pic,
		Remarks:      req.Remarks,
		PlateType:    req.PlateType,
		JumlahPlate:  req.JumlahPlate,
		Status:       workflow.InitialBonStatus(),
		MachineOffAt: &now,
	}

	err := s.br.RunInTransaction(func(tx *goqu.TxDatabase) error {
		id, err := s.br.Insert(tx, item)
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

func (s *BonService) Get(id int) (*models.BonRequest, error) {
	item, err := s.br.Get(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *BonService) List(conditions repository.QueryBuilder) ([]models.BonRequest, error) {
	return s.br.List(conditions)
}

func (s *BonService) transition(id int, fn func(*models.BonRequest) error) (models.Status, error) {
	var status models.Status

	err := s.br.RunInTransaction(func(tx *goqu.TxDatabase) error {
		item, err := s.br.GetTx(tx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrNotFound
		}
		if err := fn(item); err != nil {
			return err
		}
		if err := s.br.Update(tx, item); err != nil {
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

func (s *BonService) StartCtp(id int, actor, group string) (models.Status, error) {
	return s.transition(id, func(item *models.BonRequest) error {
		return workflow.StartCtpBon(item, actor, group)
	})
}

func (s *BonService) FinishCtp(id int) (models.Status, error) {
	return s.transition(id, workflow.FinishCtpBon)
}

func (s *BonService) Deliver(id int) (models.Status, error) {
	return s.transition(id, workflow.DeliverPlateBon)
}

func (s *BonService) DeclineCtp(id int, actor, reason string) (models.Status, error) {
	return s.transition(id, func(item *models.BonRequest) error {
		return workflow.DeclineCtpBon(item, actor, reason)
	})
}

func (s *BonService) Cancel(id int, actor, reason string) (models.Status, error) {
	return s.transition(id, func(item *models.BonRequest) error {
		return workflow.CancelBon(item, actor, reason)
	})
}
