package container

import (
	"database/sql"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/adjustments"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/bons"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/chemicals"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/notifications"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/production"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/reports"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/repository"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/stockcards"
)

type Container struct {
	Repository          *repository.Repository
	AdjustmentHandler   *adjustments.AdjustmentHandler
	BonHandler          *bons.BonHandler
	ChemicalHandler     *chemicals.ChemicalHandler
	ProductionHandler   *production.ProductionHandler
	StockCardHandler    *stockcards.Handler
	NotificationHandler *notifications.NotificationHandler
	ReportHandler       *reports.ReportHandler
}

func NewAppContainer(db *sql.DB) *Container {
	repo := repository.NewRepository(db)

	adjustmentRepo := adjustments.NewRepository(repo)
	adjustmentService := adjustments.NewService(adjustmentRepo)
	adjustmentHandler := adjustments.NewHandler(adjustmentService)

	bonRepo := bons.NewRepository(repo)
	bonService := bons.NewService(bonRepo)
	bonHandler := bons.NewHandler(bonService)

	chemicalRepo := chemicals.NewRepository(repo)
	chemicalHandler := chemicals.NewHandler(chemicalRepo)

	productionRepo := production.NewRepository(repo)
	productionHandler := production.NewHandler(productionRepo)

	cardStore := stockcards.NewCardRepository(repo)
	fujiPlate := stockcards.NewService(stockcards.FujiPlateCard(), cardStore)
	saphiraPlate := stockcards.NewService(stockcards.SaphiraPlateCard(), cardStore)
	fujiChemical := stockcards.NewService(stockcards.FujiChemicalCard(), cardStore)
	saphiraChemical := stockcards.NewService(stockcards.SaphiraChemicalCard(), cardStore)
	stockCardHandler := stockcards.NewHandler(fujiPlate, saphiraPlate, fujiChemical, saphiraChemical)

	notificationHandler := notifications.NewHandler(adjustmentRepo, bonRepo)
	reportHandler := reports.NewHandler(bonService, fujiPlate, saphiraPlate, fujiChemical, saphiraChemical)

	return &Container{
		Repository:          repo,
		AdjustmentHandler:   adjustmentHandler,
		BonHandler:          bonHandler,
		ChemicalHandler:     chemicalHandler,
		ProductionHandler:   productionHandler,
		StockCardHandler:    stockCardHandler,
		NotificationHandler: notificationHandler,
		ReportHandler:       reportHandler,
	}
}
