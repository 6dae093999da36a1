package router

import (
	"github.com/labstack/echo/v4"

	"qrproduct/pkg/product/controller"
)

func New(
	e *echo.Echo,
	productCtrl controller.ProductController,
	reportCtrl interface{ Export(echo.Context) error },
	healthCtrl interface {
		Root(echo.Context) error
		Health(echo.Context) error
	},
) *echo.Echo {
	e.GET("/", healthCtrl.Root)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")
	api.GET("/product/:product_id", productCtrl.Get)
	api.GET("/products", productCtrl.List)
	api.POST("/product", productCtrl.Create)
	api.GET("/products/export", reportCtrl.Export)

	return e
}
