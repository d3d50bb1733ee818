package usecase

import (
	"log"
	"strings"

	"storefront-backend/internal/marketing/domain"
	"storefront-backend/internal/marketing/repository"
)

// ContactErrors maps contact-form fields to validation messages.
type ContactErrors map[string]string

func (e ContactErrors) Error() string {
	return "validation failed"
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type MarketingUsecase interface {
	Testimonials() ([]domain.Testimonial, error)
	Offers() []domain.Offer
	SubmitContact(req *ContactRequest) error
	Seed() error
}

type marketingUsecase struct {
	repo repository.MarketingRepository
}

func NewMarketingUsecase(repo repository.MarketingRepository) MarketingUsecase {
	return &marketingUsecase{repo: repo}
}

func (u *marketingUsecase) Testimonials() ([]domain.Testimonial, error) {
	return u.repo.ListTestimonials()
}

func (u *marketingUsecase) Offers() []domain.Offer {
	return []domain.Offer{
		{ID: 1, Title: "Free Shipping", Description: "Free shipping on orders over 500 EGP"},
		{ID: 2, Title: "30% Off", Description: "New customer discount"},
		{ID: 3, Title: "Flash Sale", Description: "Limited time offers on selected items"},
	}
}

func (u *marketingUsecase) SubmitContact(req *ContactRequest) error {
	errs := ContactErrors{}
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	}
	if strings.TrimSpace(req.Message) == "" {
		errs["message"] = "Message is required"
	}
	if len(errs) > 0 {
		return errs
	}

	return u.repo.SaveContactMessage(&domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
}

// Seed installs the default testimonial set on first boot.
func (u *marketingUsecase) Seed() error {
	err := u.repo.SeedTestimonials([]domain.Testimonial{
		{Name: "Sarah Johnson", Rating: 5, Position: 1,
			Text: "Outstanding quality and exceptional service! The products exceeded my expectations and the customer support team was incredibly helpful throughout the entire process."},
		{Name: "Michael Chen", Rating: 5, Position: 2,
			Text: "I've been a loyal customer for over two years now. The attention to detail and commitment to excellence is what keeps me coming back. Highly recommended!"},
		{Name: "Emily Rodriguez", Rating: 5, Position: 3,
			Text: "Fast shipping, beautiful packaging, and products that actually work as advertised. This store has become my go-to for all my shopping needs."},
		{Name: "David Kim", Rating: 5, Position: 4,
			Text: "The quality-to-price ratio is unbeatable. I've recommended this store to all my friends and colleagues. Keep up the fantastic work!"},
	})
	if err != nil {
		log.Printf("[WARN] Failed to seed testimonials: %v", err)
	}
	return err
}
