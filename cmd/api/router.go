package api

import (
	"net/http"

	authDelivery "storefront-backend/internal/auth/delivery"
	catalogDelivery "storefront-backend/internal/catalog/delivery"
	marketingDelivery "storefront-backend/internal/marketing/delivery"
	"storefront-backend/internal/session"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authDelivery.NewAuthHandler(h.authUsecase)
	catalogHandler := catalogDelivery.NewCatalogHandler(h.catalogUsecase)
	marketingHandler := marketingDelivery.NewMarketingHandler(h.marketingUsecase, h.rotator)

	// Storefront page routes. Guests are redirected away from protected
	// pages, authenticated visitors away from the login/register pages.
	guest := session.GuestOnly(h.store)
	protected := session.RequireAuth(h.reconciler)

	r.GET("/", h.homePage)
	r.GET("/shop", catalogHandler.ListProducts)
	r.GET("/product/:id", catalogHandler.GetProduct)
	r.GET("/offer", marketingHandler.GetOffers)
	r.GET("/contact", h.contactPage)
	r.GET("/login", guest, h.formPage("login"))
	r.GET("/register", guest, h.formPage("register"))
	r.GET("/cart", protected, h.cartPage)
	r.GET("/wishlist", protected, h.wishlistPage)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(h.authUsecase), authHandler.Me)
		}

		// Catalog routes
		products := api.Group("/products")
		{
			products.GET("", catalogHandler.ListProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		// Marketing routes
		api.GET("/home", h.homePage)
		api.GET("/offers", marketingHandler.GetOffers)
		api.GET("/testimonials", marketingHandler.GetTestimonials)
		api.POST("/testimonials/:direction", marketingHandler.AdvanceTestimonial)
		api.POST("/contact", marketingHandler.SubmitContact)

		// Settings routes (public) - theme preference
		settings := api.Group("/settings")
		{
			settings.GET("/theme", GetThemeSettings)
			settings.PUT("/theme", UpdateThemeSettings)
		}

		// Cart/wishlist stubs (protected)
		stubs := api.Group("")
		stubs.Use(authDelivery.AuthMiddleware(h.authUsecase))
		{
			stubs.POST("/cart/items", h.addToCartStub)
			stubs.GET("/wishlist", h.wishlistStub)
			stubs.POST("/wishlist/:productId", h.toggleWishlistStub)
		}
	}
}

func (h *Handler) homePage(c *gin.Context) {
	featured, err := h.catalogUsecase.Featured(c.Request.Context(), h.config.FeaturedCount)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load products. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"featured": featured,
		"stats": []gin.H{
			{"label": "Happy Customers", "value": "10K+"},
			{"label": "Premium Products", "value": "500+"},
			{"label": "Customer Rating", "value": "4.9"},
		},
	})
}

func (h *Handler) contactPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"info": []gin.H{
			{"title": "Visit Us", "detail": "123 Commerce Street, Cairo"},
			{"title": "Call Us", "detail": "+20 100 000 0000"},
			{"title": "Email Us", "detail": "hello@ourstore.example"},
		},
	})
}

func (h *Handler) formPage(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": page})
	}
}

func (h *Handler) cartPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "cart", "items": []gin.H{}})
}

func (h *Handler) wishlistPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "wishlist", "items": []gin.H{}})
}

// Cart and wishlist are presentation stubs: they acknowledge the action
// without persisting anything.
func (h *Handler) addToCartStub(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "added to cart", "product_id": req.ProductID, "quantity": req.Quantity})
}

func (h *Handler) wishlistStub(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": []gin.H{}})
}

func (h *Handler) toggleWishlistStub(c *gin.Context) {
	c.JSON(http.StatusAccepted, gin.H{"message": "wishlist updated", "product_id": c.Param("productId")})
}
