package routes

import (
	"net/http"

	handlers "couponscan/internal/handlers/api"
	"couponscan/internal/middleware"
	"couponscan/internal/models"
	"couponscan/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth   *handlers.AuthHandler
	Coupon *handlers.CouponHandler
	Upload *handlers.UploadHandler
}

// SetupAPIRoutes registers the endpoints consumed by the mobile apps
func SetupAPIRoutes(r *gin.RouterGroup, h *Handlers, jwtSecret string) {
	// Public routes
	r.POST("/login", h.Auth.Login)
	r.POST("/customer/register", h.Auth.Register)
	r.GET("/coupon/check/:code", h.Coupon.CheckCoupon)

	// Business routes (require authentication)
	business := r.Group("")
	business.Use(middleware.AuthRequired(jwtSecret), middleware.RoleRequired(models.RoleBusinessOwner, models.RoleAdmin))
	{
		business.POST("/scanned_coupon", h.Coupon.RecordRedemption)
		business.POST("/upload_image", h.Upload.UploadImage)
	}
}

// NewRouter builds the gin engine with global middleware, the v1 API and a
// health check.
func NewRouter(h *Handlers, jwtSecret, version string, log *logger.Logger) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.CORSMiddleware())

	v1 := router.Group("/api/v1")
	SetupAPIRoutes(v1, h, jwtSecret)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": version,
		})
	})

	return router
}
