package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobboard-dev/jobboard/internal/handlers"
	"github.com/jobboard-dev/jobboard/internal/middleware"
	"github.com/jobboard-dev/jobboard/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.GET("/profile", middleware.AuthMiddleware(), handlers.GetProfile)
			auth.PUT("/profile", middleware.AuthMiddleware(), handlers.UpdateProfile)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", handlers.ListJobs)

			admin := jobs.Group("/admin", middleware.AuthMiddleware(), middleware.AdminOnly())
			{
				admin.GET("/all", handlers.ListJobsForAdmin)
				admin.GET("/:id", handlers.GetJobForAdmin)
			}

			jobs.GET("/:id", handlers.GetJob)
			jobs.POST("", middleware.AuthMiddleware(), middleware.AdminOnly(), handlers.CreateJob)
			jobs.PUT("/:id", middleware.AuthMiddleware(), middleware.AdminOnly(), handlers.UpdateJob)
			jobs.PATCH("/:id/toggle-status", middleware.AuthMiddleware(), middleware.AdminOnly(), handlers.ToggleJobStatus)
			jobs.DELETE("/:id", middleware.AuthMiddleware(), middleware.AdminOnly(), handlers.DeleteJob)
		}

		apply := api.Group("/apply")
		{
			apply.POST("/:jobId", handlers.SubmitApplication)
			apply.GET("", middleware.AuthMiddleware(), middleware.AdminOnly(), handlers.ListApplications)
			apply.GET("/my/:email", middleware.AuthMiddleware(), handlers.ListMyApplications)
			apply.PATCH("/:id/status", middleware.AuthMiddleware(), middleware.AdminOnly(), handlers.UpdateApplicationStatus)
		}
	}

	return r
}
