package serviceImp

import (
	"strings"

	"github.com/xuri/excelize/v2"

	productRepo "qrproduct/pkg/product/repository"
	"qrproduct/pkg/report/service"
)

type reportSvc struct{ products productRepo.ProductRepository }

func NewReportService(products productRepo.ProductRepository) service.ReportService {
	return &reportSvc{products}
}

const sheetName = "Products"

func (s *reportSvc) ProductsXLSX() ([]byte, error) {
	ps, err := s.products.ListByRecency()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headers := []string{"Product ID", "Harvest ID", "Batch Number", "Harvest Date", "Farm Location", "Farmer Name", "Grade", "Weight (kg)", "Certifications", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for i, p := range ps {
		row := []any{
			p.ProductID,
			p.HarvestID,
			p.BatchNumber,
			p.HarvestDate,
			p.FarmLocation,
			p.FarmerName,
			p.Grade,
			p.WeightKg,
			strings.Join(p.Certifications, ", "),
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
