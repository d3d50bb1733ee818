package repository

import (
	"time"

	"storefront-backend/internal/marketing/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MarketingRepository interface {
	ListTestimonials() ([]domain.Testimonial, error)
	SeedTestimonials(testimonials []domain.Testimonial) error
	SaveContactMessage(msg *domain.ContactMessage) error
}

type marketingRepository struct {
	db *gorm.DB
}

func NewMarketingRepository(db *gorm.DB) MarketingRepository {
	return &marketingRepository{db: db}
}

func (r *marketingRepository) ListTestimonials() ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	err := r.db.Order("position asc").Find(&testimonials).Error
	return testimonials, err
}

// SeedTestimonials inserts the default set once; an already-populated table
// is left alone.
func (r *marketingRepository) SeedTestimonials(testimonials []domain.Testimonial) error {
	var count int64
	if err := r.db.Model(&domain.Testimonial{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&testimonials).Error
}

func (r *marketingRepository) SaveContactMessage(msg *domain.ContactMessage) error {
	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now()
	return r.db.Create(msg).Error
}
