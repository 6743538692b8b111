package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/transparify/transparify_backend/cmd/docs"
	"github.com/transparify/transparify_backend/internal/core/ports/gateways"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/middleware"
	"github.com/transparify/transparify_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	paymentGateway gateways.PaymentGateway,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes: auth, webhook ingestion, receipt lookup and
	// verification, transparency snapshot, campaign reads
	setupPublicRoutes(r, cfg, services, paymentGateway)

	// Authenticated API routes
	setupAPIRoutes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupPublicRoutes configures everything reachable without a JWT. The
// webhook authenticates with its own HMAC signature, and receipt
// verification is deliberately open so anyone holding a receipt can check it.
func setupPublicRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	paymentGateway gateways.PaymentGateway,
) {
	api := r.Group("/api")

	registerAuthRoutes(api, NewAuthHandler(services.User, cfg))
	registerWebhookRoutes(api, services.Transaction, paymentGateway)
	registerReceiptRoutes(api, services.Receipt, newVerifyLimiter())
	registerPublicTransparencyRoutes(api, services.Transparency)
	registerPublicCampaignRoutes(api, services.Campaign)
}

// setupAPIRoutes configures the authenticated /api group and delegates to
// specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	registerTransactionRoutes(api, services.Transaction, services.Receipt)
	registerCampaignRoutes(api, services.Campaign)
	registerTransparencyRoutes(api, services.Transparency)
	registerUserRoutes(api, services.User)
}

// newVerifyLimiter builds the rate limit applied to public receipt
// verification.
func newVerifyLimiter() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted("30-M")
	if err != nil {
		panic(err)
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
