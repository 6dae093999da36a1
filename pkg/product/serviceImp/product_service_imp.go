package serviceImp

import (
	"strconv"
	"time"

	"qrproduct/entities"
	repo "qrproduct/pkg/product/repository"
	"qrproduct/pkg/product/service"
	timelineSvc "qrproduct/pkg/timeline/service"
)

type productSvc struct {
	r  repo.ProductRepository
	tl timelineSvc.TimelineService
}

func NewProductService(r repo.ProductRepository, tl timelineSvc.TimelineService) service.ProductService {
	return &productSvc{r: r, tl: tl}
}

// Detail fills demo defaults for empty optional fields. The timeline is
// looked up by the STORED farmer name, not the defaulted one — a product
// saved without a farmer gets "Petani Demo" in the response but an empty
// timeline, because the empty string matches no history rows.
func (s *productSvc) Detail(productID string) (*service.ProductDetail, error) {
	p, err := s.r.FindByID(productID)
	if err != nil {
		return nil, err
	}

	tl, err := s.tl.Build(p.FarmerName)
	if err != nil {
		return nil, err
	}

	d := &service.ProductDetail{
		ProductID:      p.ProductID,
		HarvestDate:    p.HarvestDate,
		FarmLocation:   orDefault(p.FarmLocation, "Garut, Jawa Barat"),
		FarmerName:     orDefault(p.FarmerName, "Petani Demo"),
		Grade:          orDefault(p.Grade, "Grade A"),
		BatchNumber:    orDefault(p.BatchNumber, "B001"),
		Weight:         "10 kg",
		Certifications: certsOrEmpty(p.Certifications),
		Timeline:       tl,
	}
	if p.WeightKg != 0 {
		d.Weight = formatWeight(p.WeightKg)
	}
	return d, nil
}

// List passes stored values through as-is; the listing never applies the
// single-get defaults, and weight is rendered even when zero.
func (s *productSvc) List() ([]service.ProductSummary, error) {
	ps, err := s.r.ListByRecency()
	if err != nil {
		return nil, err
	}
	out := make([]service.ProductSummary, 0, len(ps))
	for _, p := range ps {
		out = append(out, service.ProductSummary{
			ProductID:      p.ProductID,
			HarvestDate:    p.HarvestDate,
			FarmLocation:   p.FarmLocation,
			FarmerName:     p.FarmerName,
			Grade:          p.Grade,
			Weight:         formatWeight(p.WeightKg),
			BatchNumber:    p.BatchNumber,
			Certifications: certsOrEmpty(p.Certifications),
		})
	}
	return out, nil
}

func (s *productSvc) Upsert(p *entities.Product) error {
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	// refreshed on replace too, so a rewritten product leads the listing
	p.CreatedAt = time.Now()
	return s.r.Upsert(p)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func certsOrEmpty(c []string) []string {
	if c == nil {
		return []string{}
	}
	return c
}

func formatWeight(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64) + " kg"
}
