package api

import (
	authUsecase "storefront-backend/internal/auth/usecase"
	catalogUsecase "storefront-backend/internal/catalog/usecase"
	marketingUsecase "storefront-backend/internal/marketing/usecase"
	"storefront-backend/internal/session"
	"storefront-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	catalogUsecase   catalogUsecase.CatalogUsecase
	marketingUsecase marketingUsecase.MarketingUsecase
	rotator          *marketingUsecase.Rotator
	store            *session.Store
	reconciler       *session.Reconciler
	durable          session.Tier
	config           *config.Config
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	catalogUc catalogUsecase.CatalogUsecase,
	marketingUc marketingUsecase.MarketingUsecase,
	rotator *marketingUsecase.Rotator,
	store *session.Store,
	reconciler *session.Reconciler,
	durable session.Tier,
	cfg *config.Config,
) *Handler {
	InitThemeSettings(durable)

	return &Handler{
		authUsecase:      authUc,
		catalogUsecase:   catalogUc,
		marketingUsecase: marketingUc,
		rotator:          rotator,
		store:            store,
		reconciler:       reconciler,
		durable:          durable,
		config:           cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
