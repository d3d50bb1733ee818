package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-backend/internal/catalog/repository"
	"storefront-backend/internal/catalog/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListProducts handles GET /api/products with the filter/sort selections as
// query parameters.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	q := usecase.Query{
		Search:   c.Query("search"),
		Category: c.DefaultQuery("category", usecase.CategoryAll),
		SortBy:   usecase.SortKey(c.DefaultQuery("sort", string(usecase.SortTitle))),
	}
	if v := c.Query("min_price"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			q.MinPrice = parsed
		}
	}
	if v := c.Query("max_price"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			q.MaxPrice = parsed
		}
	}
	view := usecase.ViewMode(c.DefaultQuery("view", string(usecase.ViewGrid)))

	result, err := h.catalogUsecase.List(c.Request.Context(), q, view)
	if err != nil {
		// Retryable page-level failure; an empty filtered result is a
		// normal 200 instead.
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load products. Please try again."})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load product. Please try again."})
		return
	}
	c.JSON(http.StatusOK, product)
}
