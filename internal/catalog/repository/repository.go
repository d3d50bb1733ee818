package repository

import (
	"context"
	"errors"

	"storefront-backend/internal/catalog/domain"
)

// ErrNotFound reports a single-document read for an id the store does not hold.
var ErrNotFound = errors.New("product not found")

// ProductRepository is the read-only view of the remote document store.
type ProductRepository interface {
	// ListByTitle returns every product, ordered by title.
	ListByTitle(ctx context.Context) ([]domain.Product, error)
	// FindByID reads a single product document; ErrNotFound if absent.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}
