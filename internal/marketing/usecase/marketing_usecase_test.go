package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"storefront-backend/internal/marketing/domain"
)

type fakeMarketingRepo struct {
	testimonials []domain.Testimonial
	saved        []*domain.ContactMessage
}

func (f *fakeMarketingRepo) ListTestimonials() ([]domain.Testimonial, error) {
	return f.testimonials, nil
}

func (f *fakeMarketingRepo) SeedTestimonials(testimonials []domain.Testimonial) error {
	if len(f.testimonials) == 0 {
		f.testimonials = testimonials
	}
	return nil
}

func (f *fakeMarketingRepo) SaveContactMessage(msg *domain.ContactMessage) error {
	f.saved = append(f.saved, msg)
	return nil
}

func TestSubmitContactRequiresFields(t *testing.T) {
	repo := &fakeMarketingRepo{}
	uc := NewMarketingUsecase(repo)

	err := uc.SubmitContact(&ContactRequest{})
	require.Error(t, err)

	var errs ContactErrors
	require.ErrorAs(t, err, &errs)
	require.Equal(t, "Name is required", errs["name"])
	require.Equal(t, "Email is required", errs["email"])
	require.Equal(t, "Message is required", errs["message"])
	require.Empty(t, repo.saved)
}

func TestSubmitContactWhitespaceOnlyRejected(t *testing.T) {
	uc := NewMarketingUsecase(&fakeMarketingRepo{})

	err := uc.SubmitContact(&ContactRequest{Name: "  ", Email: "\t", Message: " "})
	var errs ContactErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 3)
}

func TestSubmitContactSavesMessage(t *testing.T) {
	repo := &fakeMarketingRepo{}
	uc := NewMarketingUsecase(repo)

	err := uc.SubmitContact(&ContactRequest{
		Name:    "Jamie Lee",
		Email:   "jamie@example.com",
		Subject: "Order question",
		Message: "Where is my order?",
	})
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	require.Equal(t, "jamie@example.com", repo.saved[0].Email)
	require.Equal(t, "Where is my order?", repo.saved[0].Message)
}

func TestSeedInstallsTestimonialsOnce(t *testing.T) {
	repo := &fakeMarketingRepo{}
	uc := NewMarketingUsecase(repo)

	require.NoError(t, uc.Seed())
	got, err := uc.Testimonials()
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Equal(t, "Sarah Johnson", got[0].Name)

	// Re-seeding leaves the populated set alone.
	require.NoError(t, uc.Seed())
	got, _ = uc.Testimonials()
	require.Len(t, got, 4)
}

func TestOffersAreStatic(t *testing.T) {
	uc := NewMarketingUsecase(&fakeMarketingRepo{})

	offers := uc.Offers()
	require.Len(t, offers, 3)
	require.Equal(t, "Free Shipping", offers[0].Title)
}
