package entities

// GrowthRecord rows are written by the monitoring app; this service only
// reads them. CreatedAt stays a raw text timestamp on purpose — the timeline
// truncates it to its date part without parsing.
type GrowthRecord struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	FarmerName string  `gorm:"index" json:"farmer_name"`
	HST        int     `gorm:"column:hst" json:"hst"` // days since planting
	HeightCM   float64 `gorm:"column:height_cm" json:"height_cm"`
	LeafCount  int     `json:"leaf_count"`
	CreatedAt  string  `json:"created_at"`
}

type JournalEntry struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FarmerName   string `gorm:"index" json:"farmer_name"`
	Date         string `gorm:"index" json:"date"` // YYYY-MM-DD
	ActivityType string `json:"activity_type"`
	Description  string `json:"description"`
}
