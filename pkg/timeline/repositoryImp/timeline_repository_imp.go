package repositoryImp

import (
	"qrproduct/entities"
	"qrproduct/pkg/timeline/repository"

	"gorm.io/gorm"
)

type timelineRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TimelineRepository { return &timelineRepo{db} }

func (r *timelineRepo) GrowthByFarmer(farmerName string) ([]entities.GrowthRecord, error) {
	var out []entities.GrowthRecord
	if err := r.db.Where("farmer_name = ?", farmerName).Order("hst ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *timelineRepo) JournalByFarmer(farmerName string) ([]entities.JournalEntry, error) {
	var out []entities.JournalEntry
	if err := r.db.Where("farmer_name = ?", farmerName).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
