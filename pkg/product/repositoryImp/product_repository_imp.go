package repositoryImp

import (
	"qrproduct/entities"
	"qrproduct/pkg/product/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductRepository { return &productRepo{db} }

func (r *productRepo) FindByID(productID string) (*entities.Product, error) {
	var p entities.Product
	if err := r.db.Where("product_id = ?", productID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) ListByRecency() ([]entities.Product, error) {
	var out []entities.Product
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Upsert(p *entities.Product) error {
	// explicit column list: created_at must be overwritten too, so a replaced
	// row gets a fresh timestamp and leads the recency-ordered listing
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"harvest_id", "batch_number", "harvest_date", "farm_location",
			"farmer_name", "grade", "weight_kg", "certifications", "created_at",
		}),
	}).Create(p).Error
}
