package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"qrproduct/config"
	"qrproduct/database"
	"qrproduct/router"

	// Product
	productCtrlImp "qrproduct/pkg/product/controllerImp"
	productRepoImp "qrproduct/pkg/product/repositoryImp"
	productSvcImp "qrproduct/pkg/product/serviceImp"

	// Timeline
	timelineRepoImp "qrproduct/pkg/timeline/repositoryImp"
	timelineSvcImp "qrproduct/pkg/timeline/serviceImp"

	// Report
	reportCtrlImp "qrproduct/pkg/report/controllerImp"
	reportSvcImp "qrproduct/pkg/report/serviceImp"

	// Health
	healthCtrlImp "qrproduct/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	// the front-end is served from Vercel, so CORS stays open by default
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	// 4) Repos/Services/Controllers
	tlRepo := timelineRepoImp.New(db)
	tlSvc := timelineSvcImp.NewTimelineService(tlRepo)

	pRepo := productRepoImp.New(db)
	pSvc := productSvcImp.NewProductService(pRepo, tlSvc)
	pCtrl := productCtrlImp.New(pSvc)

	rSvc := reportSvcImp.NewReportService(pRepo)
	rCtrl := reportCtrlImp.New(rSvc)

	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Router
	r := router.New(e, pCtrl, rCtrl, hCtrl)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
