package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freshbasket/storefront-api/internal/config"
	domainRepo "github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/internal/presentation/http/handler"
	"github.com/freshbasket/storefront-api/internal/presentation/http/middleware"
	"github.com/freshbasket/storefront-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	Category    *handler.CategoryHandler
	Order       *handler.OrderHandler
	Coupon      *handler.CouponHandler
	Loyalty     *handler.LoyaltyHandler
	Wishlist    *handler.WishlistHandler
	Review      *handler.ReviewHandler
	Ticket      *handler.TicketHandler
	Banner      *handler.BannerHandler
	Dashboard   *handler.DashboardHandler
	User        *handler.UserHandler
	Backup      *handler.BackupHandler
	PackingSlip *handler.PackingSlipHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h, deps)
		registerStorefrontRoutes(v1, h, deps)
		registerCustomerRoutes(v1, h, deps)
		registerAdminRoutes(v1, h, deps)
	}

	return router
}

func registerAuthRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)

		authed := auth.Group("")
		authed.Use(middleware.AuthMiddleware(deps.JWTManager))
		{
			authed.GET("/me", h.Auth.Me)
			authed.PUT("/profile", h.Auth.UpdateProfile)
			authed.POST("/change-password", h.Auth.ChangePassword)
		}
	}
}

// registerStorefrontRoutes registers routes browsable without an account.
// Optional auth lets staff tokens see inactive products and pending reviews.
func registerStorefrontRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	optional := middleware.OptionalAuthMiddleware(deps.JWTManager)

	products := rg.Group("/products", optional)
	{
		products.GET("", h.Product.List)
		products.GET("/slug/:slug", h.Product.GetBySlug)
		products.GET("/:id/related", h.Product.GetRelated)
		products.GET("/:id/reviews", h.Review.ListByProduct)
	}

	rg.GET("/categories", h.Category.List)
	rg.GET("/categories/:id", h.Category.Get)

	banners := rg.Group("/banners")
	{
		banners.GET("", h.Banner.ListLive)
		banners.POST("/:id/click", h.Banner.Click)
	}

	// Guests may open support tickets with an email address
	rg.POST("/tickets", optional, h.Ticket.Create)
}

func registerCustomerRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTManager))

	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})

	checkout := authed.Group("/checkout")
	{
		checkout.POST("/quote", h.Order.Quote)
		checkout.POST("", idempotency, h.Order.Checkout)
	}

	orders := authed.Group("/orders")
	{
		orders.GET("", h.Order.ListMine)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}

	loyalty := authed.Group("/loyalty")
	{
		loyalty.GET("/balance", h.Loyalty.Balance)
		loyalty.GET("/history", h.Loyalty.History)
	}

	wishlist := authed.Group("/wishlist")
	{
		wishlist.GET("", h.Wishlist.List)
		wishlist.POST("/:productId", h.Wishlist.Add)
		wishlist.DELETE("/:productId", h.Wishlist.Remove)
	}

	authed.POST("/coupons/validate", h.Coupon.Validate)

	authed.POST("/products/:id/reviews", h.Review.Create)
	authed.DELETE("/reviews/:id", h.Review.Delete)

	tickets := authed.Group("/tickets")
	{
		tickets.GET("", h.Ticket.ListMine)
		tickets.GET("/:id", h.Ticket.Get)
		tickets.POST("/:id/reply", h.Ticket.Reply)
	}
}

func registerAdminRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.JWTManager))
	admin.Use(middleware.RequireStaff())

	products := admin.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", h.Product.Create)
		products.POST("/bulk-import", h.Product.BulkImport)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	categories := admin.Group("/categories")
	{
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}

	coupons := admin.Group("/coupons")
	{
		coupons.GET("", h.Coupon.List)
		coupons.GET("/:id", h.Coupon.Get)
		coupons.POST("", h.Coupon.Create)
		coupons.PUT("/:id", h.Coupon.Update)
		coupons.DELETE("/:id", h.Coupon.Delete)
	}

	orders := admin.Group("/orders")
	{
		orders.GET("", h.Order.ListAll)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/packing-slip", h.PackingSlip.Print)
	}
	admin.GET("/printer/status", h.PackingSlip.PrinterStatus)

	reviews := admin.Group("/reviews")
	{
		reviews.POST("/:id/approve", h.Review.Approve)
		reviews.POST("/:id/respond", h.Review.Respond)
	}

	tickets := admin.Group("/tickets")
	{
		tickets.GET("", h.Ticket.ListAll)
		tickets.GET("/:id", h.Ticket.Get)
		tickets.POST("/:id/reply", h.Ticket.Reply)
		tickets.PUT("/:id", h.Ticket.Update)
	}

	banners := admin.Group("/banners")
	{
		banners.GET("", h.Banner.ListAll)
		banners.POST("", h.Banner.Create)
		banners.PUT("/:id", h.Banner.Update)
		banners.DELETE("/:id", h.Banner.Delete)
	}

	dashboard := admin.Group("/dashboard")
	{
		dashboard.GET("", h.Dashboard.Stats)
		dashboard.GET("/low-stock", h.Dashboard.LowStock)
	}

	// User management and backups require an administrative role
	users := admin.Group("/users", middleware.RequireAdmin())
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.PUT("/:id/active", h.User.SetActive)
		users.DELETE("/:id", h.User.Delete)
		users.POST("/:id/loyalty", h.Loyalty.Adjust)
	}
	admin.GET("/roles", middleware.RequireAdmin(), h.User.ListRoles)

	backups := admin.Group("/backups", middleware.RequireAdmin())
	{
		backups.GET("", h.Backup.List)
		backups.GET("/:id", h.Backup.Get)
		backups.POST("", h.Backup.Run)
	}
}
