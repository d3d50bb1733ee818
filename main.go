package main

import (
	"context"
	"log"
	"time"

	api "storefront-backend/cmd/api"
	authUsecase "storefront-backend/internal/auth/usecase"
	catalogDomain "storefront-backend/internal/catalog/domain"
	catalogRepo "storefront-backend/internal/catalog/repository"
	catalogUsecase "storefront-backend/internal/catalog/usecase"
	"storefront-backend/internal/identity"
	identityFirebase "storefront-backend/internal/identity/firebase"
	identityLocal "storefront-backend/internal/identity/local"
	marketingDomain "storefront-backend/internal/marketing/domain"
	marketingRepo "storefront-backend/internal/marketing/repository"
	marketingUsecase "storefront-backend/internal/marketing/usecase"
	"storefront-backend/internal/session"
	"storefront-backend/pkg/config"
	"storefront-backend/pkg/database"
	"storefront-backend/pkg/firebase"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&identityLocal.Account{}, &marketingDomain.Testimonial{}, &marketingDomain.ContactMessage{}, &catalogDomain.Product{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Session persistence tiers: one durable, one scoped to this process
	durable, err := session.NewFileTier(cfg.StateDir, "session.json")
	if err != nil {
		log.Fatal("Failed to open durable session tier:", err)
	}
	scoped := session.NewMemoryTier()

	// Auth state store
	store := session.NewStore()

	// Identity provider
	var provider identity.Provider
	var fbApp *firebase.App
	if cfg.IdentityProvider == "local" || cfg.FirebaseAPIKey == "" {
		log.Printf("[WARN] Using local identity provider (no Firebase API key configured)")
		provider = identityLocal.NewProvider(db)
	} else {
		provider = identityFirebase.NewProvider(cfg.FirebaseAPIKey)
	}

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(provider, store, durable, scoped, cfg)

	// Firebase app: admin ID token verification + the Firestore catalog.
	// Without a configured project the catalog falls back to Postgres.
	var catalogRepository catalogRepo.ProductRepository
	if cfg.FirebaseCredentials != "" || cfg.FirebaseProjectID != "" {
		fbApp, err = firebase.NewApp(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
		if err != nil {
			log.Fatal("Failed to initialize Firebase app:", err)
		}
		authUc.SetIDTokenVerifier(identityFirebase.NewAdminVerifier(fbApp.Auth()))
		catalogRepository = catalogRepo.NewFirestoreRepository(fbApp.Firestore())
	} else {
		log.Printf("[WARN] Firebase project not configured, serving the catalog from Postgres")
		if err := catalogRepo.SeedProducts(db); err != nil {
			log.Printf("[WARN] Product seed skipped: %v", err)
		}
		catalogRepository = catalogRepo.NewGormRepository(db)
	}

	catalogUc := catalogUsecase.NewCatalogUsecase(catalogRepository)

	marketingRepository := marketingRepo.NewMarketingRepository(db)
	marketingUc := marketingUsecase.NewMarketingUsecase(marketingRepository)
	if err := marketingUc.Seed(); err != nil {
		log.Printf("[WARN] Testimonial seed skipped: %v", err)
	}

	testimonials, err := marketingUc.Testimonials()
	if err != nil {
		log.Fatal("Failed to load testimonials:", err)
	}
	rotator := marketingUsecase.NewRotator(len(testimonials), 5*time.Second)
	go rotator.Run(ctx)

	// Session reconciler: mirrors the provider's live session into the
	// state store and persistence tiers
	reconciler := session.NewReconciler(provider, store, durable, scoped)
	go reconciler.Run(ctx)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, catalogUc, marketingUc, rotator, store, reconciler, durable, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
