package routes

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/core/container"
	"github.com/prepr3ss/prepress-web-center-sub001/internal/middleware"
	"github.com/prepr3ss/prepress-web-center-sub001/pkg/security"
)

func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	container.AdjustmentHandler.RegisterRoutes(router)
	container.BonHandler.RegisterRoutes(router)
	container.ChemicalHandler.RegisterRoutes(router)
	container.ProductionHandler.RegisterRoutes(router)
	container.NotificationHandler.RegisterRoutes(router)
	container.ReportHandler.RegisterRoutes(router)
}

// Stock card mutation and confirmation stay behind the gateway token; the
// operator claim identifies who reconciled the shift.
func RegisterProtectedRoutes(router *gin.Engine, container *container.Container) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	protectedRoutes.Use(security.RequireDivision("CTP", "PPIC"))

	container.StockCardHandler.RegisterRoutes(protectedRoutes)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckMiddleware())

	openapiFilePath := "./docs/index.html"
	if _, err := os.Stat(openapiFilePath); err == nil {
		router.GET("/openapi.html", func(c *gin.Context) {
			c.File(openapiFilePath)
		})
		log.Println("Route docs/index.html registered successfully.")
	} else {
		log.Printf("Warning: %s not found. Route /openapi.html will not be registered.\n", openapiFilePath)
	}
}
