package service

import (
	"qrproduct/entities"
	timelineSvc "qrproduct/pkg/timeline/service"
)

// ProductDetail is the single-get response shape served to the QR landing
// page: camelCase keys, weight rendered as text, defaults filled in.
type ProductDetail struct {
	ProductID      string                      `json:"productId"`
	HarvestDate    string                      `json:"harvestDate"`
	FarmLocation   string                      `json:"farmLocation"`
	FarmerName     string                      `json:"farmerName"`
	Grade          string                      `json:"grade"`
	Weight         string                      `json:"weight"`
	BatchNumber    string                      `json:"batchNumber"`
	Certifications []string                    `json:"certifications"`
	Timeline       []timelineSvc.TimelineEvent `json:"timeline"`
}

// ProductSummary is one row of the listing. Unlike ProductDetail it carries
// stored values through without defaulting and has no timeline.
type ProductSummary struct {
	ProductID      string   `json:"productId"`
	HarvestDate    string   `json:"harvestDate"`
	FarmLocation   string   `json:"farmLocation"`
	FarmerName     string   `json:"farmerName"`
	Grade          string   `json:"grade"`
	Weight         string   `json:"weight"`
	BatchNumber    string   `json:"batchNumber"`
	Certifications []string `json:"certifications"`
}

type ProductService interface {
	Detail(productID string) (*ProductDetail, error)
	List() ([]ProductSummary, error)
	Upsert(p *entities.Product) error
}
