// Package routes wires the HTTP endpoints to their controllers.
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/anvaya-club/backend/docs"
	"github.com/anvaya-club/backend/internal/app/controllers"
	"github.com/anvaya-club/backend/internal/config"
	"github.com/anvaya-club/backend/internal/middleware"
	"github.com/anvaya-club/backend/internal/pkg/auth"
)

const (
	appName    = "Anvaya Club API"
	appVersion = "1.0.0"
)

// Setup registers all routes and global middleware on the router.
func Setup(router *gin.Engine, ctrl *controllers.Controllers, jwtService *auth.JWTService, cfg *config.Config) {
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    appName,
			"status":  "running",
			"version": appVersion,
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/wings", ctrl.WingController.ListWings)
		api.GET("/wings/:slug", ctrl.WingController.GetWing)
		api.GET("/wings/:slug/photos", ctrl.PhotoController.ListByWing)
		api.GET("/wings/:slug/photos/latest", ctrl.PhotoController.Latest)
		api.GET("/wings/:slug/activities", ctrl.ActivityController.ListByWing)
		api.GET("/activities", ctrl.ActivityController.ListAll)
		api.GET("/activities/:id", ctrl.ActivityController.GetByID)
		api.GET("/statistics/activities", ctrl.StatsController.ActivityStatistics)

		admin := api.Group("/admin")
		admin.POST("/login", ctrl.AuthController.Login)

		protected := admin.Group("")
		protected.Use(middleware.RequireAuth(jwtService))
		{
			protected.POST("/photos", ctrl.PhotoController.Upload)
			protected.DELETE("/photos/:id", ctrl.PhotoController.Delete)
			protected.POST("/activities", ctrl.ActivityController.Create)
			protected.PUT("/activities/:id", ctrl.ActivityController.Update)
			protected.DELETE("/activities/:id", ctrl.ActivityController.Delete)
		}
	}
}
