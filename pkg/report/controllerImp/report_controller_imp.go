package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"qrproduct/pkg/report/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportCtrl struct{ svc service.ReportService }

func New(svc service.ReportService) *ReportCtrl { return &ReportCtrl{svc} }

func (h *ReportCtrl) Export(c echo.Context) error {
	data, err := h.svc.ProductsXLSX()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, data)
}
