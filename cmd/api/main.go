package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/config"
	"github.com/freshbasket/storefront-api/internal/domain/pricing"
	"github.com/freshbasket/storefront-api/internal/infrastructure/database"
	"github.com/freshbasket/storefront-api/internal/infrastructure/repository"
	"github.com/freshbasket/storefront-api/internal/presentation/http/handler"
	"github.com/freshbasket/storefront-api/internal/presentation/http/routes"
	"github.com/freshbasket/storefront-api/pkg/email"
	"github.com/freshbasket/storefront-api/pkg/oauth"
	"github.com/freshbasket/storefront-api/pkg/printer"
	"github.com/freshbasket/storefront-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	settlementRepo := repository.NewSettlementRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	backupRepo := repository.NewBackupLogRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Build the pricing engine from configuration
	engine := pricing.NewEngine(pricing.Policy{
		FreeShippingThreshold:    cfg.Pricing.FreeShippingThreshold,
		FlatShippingCost:         cfg.Pricing.FlatShippingCost,
		TaxRateBasisPoints:       cfg.Pricing.TaxRateBasisPoints,
		RedemptionCapBasisPoints: cfg.Pricing.RedemptionCapBasisPoints,
		PointValue:               cfg.Pricing.PointValue,
		EarnDivisor:              cfg.Pricing.EarnDivisor,
		ReverseLoyaltyOnCancel:   cfg.Pricing.ReverseLoyaltyOnCancel,
	}, service.NewCatalogLookup(productRepo), service.NewCouponLookup(couponRepo))

	// Initialize thermal printer for warehouse packing slips
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	packingSlipService := service.NewPackingSlipService(thermalPrinter, cfg.Printer.Type)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(engine, orderRepo, userRepo, settlementRepo, emailService, packingSlipService)
	couponService := service.NewCouponService(couponRepo, productRepo, engine)
	loyaltyService := service.NewLoyaltyService(loyaltyRepo, userRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo, orderRepo)
	ticketService := service.NewTicketService(ticketRepo, orderRepo, userRepo)
	bannerService := service.NewBannerService(bannerRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, productRepo, userRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	backupService := service.NewBackupService(backupRepo, cfg.Database, cfg.Backup)

	// Start the scheduled backup loop
	backupService.Start()
	defer backupService.Stop()

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Product:     handler.NewProductHandler(productService),
		Category:    handler.NewCategoryHandler(categoryService),
		Order:       handler.NewOrderHandler(orderService),
		Coupon:      handler.NewCouponHandler(couponService),
		Loyalty:     handler.NewLoyaltyHandler(loyaltyService),
		Wishlist:    handler.NewWishlistHandler(wishlistService),
		Review:      handler.NewReviewHandler(reviewService),
		Ticket:      handler.NewTicketHandler(ticketService),
		Banner:      handler.NewBannerHandler(bannerService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		User:        handler.NewUserHandler(userService),
		Backup:      handler.NewBackupHandler(backupService),
		PackingSlip: handler.NewPackingSlipHandler(packingSlipService, orderService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
