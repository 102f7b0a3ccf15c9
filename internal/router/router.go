package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/edudham/edudham-api/internal/handler"
	"github.com/edudham/edudham-api/internal/middleware"
	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/internal/service"
	"github.com/edudham/edudham-api/pkg/config"
	"github.com/edudham/edudham-api/pkg/logger"
	corsmiddleware "github.com/edudham/edudham-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edudham/edudham-api/pkg/middleware/requestid"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	University  *handler.UniversityHandler
	Application *handler.ApplicationHandler
	Category    *handler.CategoryHandler
	Admin       *handler.AdminHandler
	Homepage    *handler.HomepageHandler
	Media       *handler.MediaHandler
	Metrics     *handler.MetricsHandler
	UploadsDir  string
}

// New configures the Gin engine with all route groups and middleware.
func New(cfg *config.Config, logr *zap.Logger, authService *service.AuthService, metrics *service.MetricsService, handlers Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", handlers.Metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	uploadsDir := handlers.UploadsDir
	if uploadsDir == "" {
		uploadsDir = cfg.Uploads.StorageDir
	}
	r.Static(cfg.Uploads.PublicPath, uploadsDir)

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/forgot-password", handlers.Auth.RequestOTP)
		auth.POST("/reset-password", handlers.Auth.VerifyOTP)
		auth.GET("/me", middleware.JWT(authService), handlers.Auth.Me)
	}

	universities := api.Group("/universities")
	{
		universities.GET("", handlers.University.List)
		universities.GET("/filters/options", handlers.University.FilterOptions)
		universities.GET("/bulk-template",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin),
			handlers.University.BulkTemplate)
		universities.POST("/bulk-upload",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin),
			handlers.University.BulkImport)
		universities.GET("/:id", handlers.University.Get)
		universities.POST("",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin),
			handlers.University.Create)
		universities.PUT("/:id",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin, models.RoleManager),
			handlers.University.Update)
		universities.DELETE("/:id",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin),
			handlers.University.Delete)
		universities.POST("/:id/photo",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin, models.RoleManager),
			handlers.University.UploadPhoto)
		universities.GET("/:id/applications",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin, models.RoleManager),
			handlers.Application.ListByUniversity)
	}

	applications := api.Group("/applications")
	{
		applications.POST("", middleware.OptionalJWT(authService), handlers.Application.Create)
		applications.GET("",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin, models.RoleManager),
			handlers.Application.List)
		applications.GET("/export",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin, models.RoleManager),
			handlers.Application.Export)
		applications.PUT("/:id/status",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin, models.RoleManager),
			handlers.Application.UpdateStatus)
		applications.DELETE("/:id",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin),
			handlers.Application.Delete)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", handlers.Category.List)
		categories.POST("",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin),
			handlers.Category.Create)
		categories.PUT("/:id",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin),
			handlers.Category.Update)
		categories.DELETE("/:id",
			middleware.JWT(authService),
			middleware.RequireRoles(models.RoleAdmin),
			handlers.Category.Delete)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.JWT(authService), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/stats", handlers.Admin.Stats)
		admin.GET("/managers", handlers.Admin.ListManagers)
		admin.POST("/managers", handlers.Admin.CreateManager)
		admin.PUT("/managers/:id", handlers.Admin.UpdateManager)
		admin.DELETE("/managers/:id", handlers.Admin.DeleteManager)
	}

	api.GET("/homepage-config", handlers.Homepage.Get)
	api.PUT("/homepage-config",
		middleware.JWT(authService),
		middleware.RequireRoles(models.RoleAdmin),
		handlers.Homepage.Update)
	api.GET("/branding", handlers.Homepage.Branding)

	api.POST("/upload/photo",
		middleware.JWT(authService),
		middleware.RequireRoles(models.RoleAdmin, models.RoleManager),
		handlers.Media.Upload)
	api.DELETE("/upload/photo/:filename",
		middleware.JWT(authService),
		middleware.RequireRoles(models.RoleAdmin),
		handlers.Media.Delete)

	return r
}
