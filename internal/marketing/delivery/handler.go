package delivery

import (
	"errors"
	"net/http"

	"storefront-backend/internal/marketing/usecase"

	"github.com/gin-gonic/gin"
)

type MarketingHandler struct {
	marketingUsecase usecase.MarketingUsecase
	rotator          *usecase.Rotator
}

func NewMarketingHandler(marketingUsecase usecase.MarketingUsecase, rotator *usecase.Rotator) *MarketingHandler {
	return &MarketingHandler{
		marketingUsecase: marketingUsecase,
		rotator:          rotator,
	}
}

// GetTestimonials handles GET /api/testimonials.
func (h *MarketingHandler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.marketingUsecase.Testimonials()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load testimonials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"testimonials": testimonials,
		"current":      h.rotator.Current(),
	})
}

// AdvanceTestimonial handles POST /api/testimonials/next and /prev.
func (h *MarketingHandler) AdvanceTestimonial(c *gin.Context) {
	var current int
	if c.Param("direction") == "prev" {
		current = h.rotator.Prev()
	} else {
		current = h.rotator.Next()
	}
	c.JSON(http.StatusOK, gin.H{"current": current})
}

// GetOffers handles GET /api/offers.
func (h *MarketingHandler) GetOffers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"offers": h.marketingUsecase.Offers()})
}

// SubmitContact handles POST /api/contact.
func (h *MarketingHandler) SubmitContact(c *gin.Context) {
	var req usecase.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.marketingUsecase.SubmitContact(&req); err != nil {
		var fields usecase.ContactErrors
		if errors.As(err, &fields) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for reaching out! We'll get back to you soon."})
}
