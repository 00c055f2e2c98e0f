package services

import (
	"errors"
	"fmt"
	"log"

	"productapi/internal/models"
	"productapi/internal/repositories"
)

// NotFoundError reports that no product exists with the requested ID.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found with id %d", e.ID)
}

// Unwrap lets callers match with errors.Is(err, repositories.ErrNotFound).
func (e *NotFoundError) Unwrap() error {
	return repositories.ErrNotFound
}

// EventPublisher publishes product lifecycle events to a message broker.
type EventPublisher interface {
	PublishProductEvent(event string, payload map[string]interface{}) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher // may be nil when no broker is configured
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID. A missing ID is
// reported as a NotFoundError carrying the ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get product with id %d: %w", id, err)
	}
	return product, nil
}

// GetProductByName retrieves the first product with an exactly matching
// name. As with GetProductByID, absence is reported with the missing key,
// still matching repositories.ErrNotFound via errors.Is.
func (s *ProductService) GetProductByName(name string) (*models.Product, error) {
	product, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("product not found with name %q: %w", name, repositories.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product with name %q: %w", name, err)
	}
	return product, nil
}

// CreateProduct persists a new product and returns it with its assigned ID.
func (s *ProductService) CreateProduct(product *models.Product) (*models.Product, error) {
	if err := s.repo.Save(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.publish("product.created", product)
	return product, nil
}

// UpdateProduct performs a full replace of the product identified by the
// path ID: name, description and price are taken wholesale from details
// and any ID carried in details is ignored. The product must already
// exist; updating a missing ID reports NotFoundError rather than
// silently creating a row.
func (s *ProductService) UpdateProduct(id uint, details models.Product) (*models.Product, error) {
	if _, err := s.GetProductByID(id); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          id,
		Name:        details.Name,
		Description: details.Description,
		Price:       details.Price,
	}
	if err := s.repo.Save(product); err != nil {
		return nil, fmt.Errorf("failed to update product with id %d: %w", id, err)
	}
	s.publish("product.updated", product)
	return product, nil
}

// DeleteProduct removes the product with the given ID. The pre-read makes
// a missing ID surface as NotFoundError before any delete is attempted.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.GetProductByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(product); err != nil {
		return fmt.Errorf("failed to delete product with id %d: %w", id, err)
	}
	s.publish("product.deleted", product)
	return nil
}

// publish sends a lifecycle event when a broker client is configured.
// Publish failures are logged and never fail the request.
func (s *ProductService) publish(event string, product *models.Product) {
	if s.events == nil {
		return
	}

	payload := map[string]interface{}{
		"id":    product.ID,
		"name":  product.Name,
		"price": product.Price.String(),
	}
	if err := s.events.PublishProductEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %d: %v", event, product.ID, err)
	}
}
