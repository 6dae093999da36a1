package service

type ReportService interface {
	// ProductsXLSX renders the whole product table as an xlsx workbook,
	// newest first, one row per product.
	ProductsXLSX() ([]byte, error)
}
