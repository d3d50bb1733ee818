package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-backend/internal/catalog/domain"
)

// gormRepository serves the catalog from Postgres for local development,
// behind the same read-only contract as the Firestore store.
type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) ProductRepository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListByTitle(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("title asc").Find(&products).Error
	return products, err
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// SeedProducts fills an empty local catalog with sample records.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	originalPrice := func(v float64) *float64 { return &v }
	products := []domain.Product{
		{ID: uuid.New().String(), Title: "Aloe Glow Serum", Description: "Hydrating facial serum with aloe and vitamin C", Category: "skincare", Price: 350, OriginalPrice: originalPrice(450), Rating: 4.8, Image: "/images/products/aloe-serum.jpg", InStock: true},
		{ID: uuid.New().String(), Title: "Ceramic Mug Set", Description: "Set of four hand-glazed stoneware mugs", Category: "home", Price: 220, Rating: 4.5, Image: "/images/products/mug-set.jpg", InStock: true},
		{ID: uuid.New().String(), Title: "Linen Throw Blanket", Description: "Lightweight woven linen blanket in natural tones", Category: "home", Price: 540, Rating: 4.7, Image: "/images/products/linen-throw.jpg", InStock: true},
		{ID: uuid.New().String(), Title: "Rose Clay Mask", Description: "Purifying clay mask with rose extract for sensitive skin", Category: "skincare", Price: 180, Rating: 4.3, Image: "/images/products/rose-mask.jpg", InStock: true},
		{ID: uuid.New().String(), Title: "Scented Soy Candle", Description: "Hand-poured soy candle with sandalwood and vanilla", Category: "home", Price: 150, OriginalPrice: originalPrice(200), Rating: 4.9, Image: "/images/products/soy-candle.jpg", InStock: true},
		{ID: uuid.New().String(), Title: "Silk Hair Scrunchies", Description: "Pack of three mulberry silk scrunchies", Category: "accessories", Price: 120, Rating: 4.2, Image: "/images/products/scrunchies.jpg", InStock: false},
	}
	return db.Create(&products).Error
}
