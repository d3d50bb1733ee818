package usecase

import (
	"context"

	"storefront-backend/internal/catalog/domain"
	"storefront-backend/internal/catalog/repository"
)

// ListResult is the derived view the listing page renders.
type ListResult struct {
	Products   []domain.Product `json:"products"`
	Total      int              `json:"total"`
	Categories []string         `json:"categories"`
	MinPrice   float64          `json:"min_price"`
	MaxPrice   float64          `json:"max_price"`
	ViewMode   ViewMode         `json:"view_mode"`
}

// CatalogUsecase owns the catalog read path: one ordered fetch per request,
// then the local filter/sort pipeline.
type CatalogUsecase interface {
	List(ctx context.Context, q Query, view ViewMode) (*ListResult, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Featured(ctx context.Context, n int) ([]domain.Product, error)
}

type catalogUsecase struct {
	repo repository.ProductRepository
}

func NewCatalogUsecase(repo repository.ProductRepository) CatalogUsecase {
	return &catalogUsecase{repo: repo}
}

func (u *catalogUsecase) List(ctx context.Context, q Query, view ViewMode) (*ListResult, error) {
	products, err := u.repo.ListByTitle(ctx)
	if err != nil {
		return nil, err
	}

	min, max := PriceBounds(products)
	// Each bound defaults independently: a zero bound means unset, so a
	// min-only query still spans up to the observed maximum.
	if q.MinPrice == 0 {
		q.MinPrice = min
	}
	if q.MaxPrice == 0 {
		q.MaxPrice = max
	}
	if q.SortBy == "" {
		q.SortBy = SortTitle
	}
	if view != ViewList {
		view = ViewGrid
	}

	filtered := Pipeline(products, q)
	return &ListResult{
		Products:   filtered,
		Total:      len(filtered),
		Categories: Categories(products),
		MinPrice:   min,
		MaxPrice:   max,
		ViewMode:   view,
	}, nil
}

func (u *catalogUsecase) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Single-image products still expose an image list for the gallery.
	if len(product.Images) == 0 && product.Image != "" {
		product.Images = []string{product.Image}
	}
	return product, nil
}

func (u *catalogUsecase) Featured(ctx context.Context, n int) ([]domain.Product, error) {
	products, err := u.repo.ListByTitle(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > n {
		products = products[:n]
	}
	return products, nil
}
