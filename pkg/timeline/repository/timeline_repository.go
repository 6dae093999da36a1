package repository

import "qrproduct/entities"

type TimelineRepository interface {
	GrowthByFarmer(farmerName string) ([]entities.GrowthRecord, error)
	JournalByFarmer(farmerName string) ([]entities.JournalEntry, error)
}
