package repository

import "qrproduct/entities"

type ProductRepository interface {
	FindByID(productID string) (*entities.Product, error)
	ListByRecency() ([]entities.Product, error)
	// Upsert is insert-or-replace keyed by product_id: a second call with the
	// same id overwrites the whole row, never merges.
	Upsert(p *entities.Product) error
}
