package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"qrproduct/entities"
	"qrproduct/pkg/product/service"
)

type ProductCtrl struct{ svc service.ProductService }

func New(svc service.ProductService) *ProductCtrl { return &ProductCtrl{svc} }

type upsertReq struct {
	ProductID      string   `json:"product_id"`
	HarvestID      string   `json:"harvest_id"`
	BatchNumber    string   `json:"batch_number"`
	HarvestDate    string   `json:"harvest_date"`
	FarmLocation   string   `json:"farm_location"`
	FarmerName     string   `json:"farmer_name"`
	Grade          string   `json:"grade"`
	WeightKg       float64  `json:"weight_kg"`
	Certifications []string `json:"certifications"`
}

func (h *ProductCtrl) Get(c echo.Context) error {
	d, err := h.svc.Detail(c.Param("product_id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "Product not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *ProductCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductCtrl) Create(c echo.Context) error {
	var req upsertReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.ProductID == "" || req.HarvestDate == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "product_id and harvest_date are required"})
	}
	p := &entities.Product{
		ProductID:      req.ProductID,
		HarvestID:      req.HarvestID,
		BatchNumber:    req.BatchNumber,
		HarvestDate:    req.HarvestDate,
		FarmLocation:   req.FarmLocation,
		FarmerName:     req.FarmerName,
		Grade:          req.Grade,
		WeightKg:       req.WeightKg,
		Certifications: req.Certifications,
	}
	if err := h.svc.Upsert(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success", "product_id": p.ProductID})
}
