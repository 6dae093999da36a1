package entities

import "time"

type Product struct {
	ProductID      string    `gorm:"primaryKey" json:"product_id"`
	HarvestID      string    `json:"harvest_id"`
	BatchNumber    string    `json:"batch_number"`
	HarvestDate    string    `json:"harvest_date"` // YYYY-MM-DD
	FarmLocation   string    `json:"farm_location"`
	FarmerName     string    `gorm:"index" json:"farmer_name"`
	Grade          string    `json:"grade"`
	WeightKg       float64   `json:"weight_kg"`
	Certifications []string  `gorm:"serializer:json" json:"certifications"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

func (Product) TableName() string { return "qr_products" }
