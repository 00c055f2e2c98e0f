package repositories

import (
	"errors"

	"productapi/internal/models"
)

// ErrNotFound is returned when no product matches the given key.
// Absence of a record is a normal outcome for lookups, so callers are
// expected to branch on it with errors.Is rather than treat it as a
// storage failure.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	// Save inserts the product when it carries no id yet and assigns a
	// fresh one; otherwise it overwrites every field of the existing row.
	Save(product *models.Product) error
	Delete(product *models.Product) error
}
