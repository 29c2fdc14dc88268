package router

import (
	"net/http"

	"github.com/datanetra/msme-registry/config"
	"github.com/datanetra/msme-registry/internal/app/controller"
	"github.com/datanetra/msme-registry/internal/middleware"
	"github.com/datanetra/msme-registry/internal/view"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Router struct {
	userController         *controller.UserController
	verificationController *controller.VerificationController
	businessController     *controller.BusinessController
	exportController       *controller.ExportController
	config                 *config.Config
}

func NewRouter(
	userController *controller.UserController,
	verificationController *controller.VerificationController,
	businessController *controller.BusinessController,
	exportController *controller.ExportController,
	cfg *config.Config,
) *Router {
	return &Router{
		userController:         userController,
		verificationController: verificationController,
		businessController:     businessController,
		exportController:       exportController,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	// Registered before the rate limiter so liveness probes are never 429ed.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "MSME Registry is running",
		})
	})

	router.Use(middleware.RateLimitMiddleware(
		r.config.RateLimit.RequestsPerSecond,
		r.config.RateLimit.Burst,
	))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	view.Register(router)

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", nil)
	})

	// Users
	router.GET("/add_user_form", r.userController.ShowForm)
	router.POST("/add_user", r.userController.Add)
	router.GET("/view_users", r.userController.List)

	// MSME verification. Certificates are served through the lookup handler
	// only; the upload directory is never mounted as static content.
	router.GET("/add_msme_form", r.verificationController.ShowForm)
	router.POST("/add_msme", r.verificationController.Add)
	router.GET("/view_msme", r.verificationController.List)
	router.GET("/certificate/:id", r.verificationController.Certificate)

	// Business profiles
	router.GET("/add_business_form", r.businessController.ShowForm)
	router.POST("/add_business", r.businessController.Add)
	router.GET("/view_business", r.businessController.List)

	// Admin xlsx exports
	exports := router.Group("/export")
	{
		exports.GET("/users.xlsx", r.exportController.Users)
		exports.GET("/msme.xlsx", r.exportController.Verifications)
		exports.GET("/business.xlsx", r.exportController.Businesses)
	}

	return router
}
