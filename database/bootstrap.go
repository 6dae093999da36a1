// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"qrproduct/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// growth_records and journal_entries are normally written by the
	// monitoring app; migrating them here keeps a fresh DB usable.
	if err := db.AutoMigrate(
		&entities.Product{},
		&entities.GrowthRecord{},
		&entities.JournalEntry{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
