package routes

import (
	"book-archive-api/controllers"
	"book-archive-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Catalog
			public.GET("/search", controllers.SearchBooks)
			public.GET("/books/:id", controllers.GetBook)
			public.GET("/collections", controllers.GetCollections)
			public.GET("/stats", controllers.GetStats)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Book Archive API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/logout", controllers.Logout)
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				books := admin.Group("/books")
				{
					books.GET("", controllers.AdminListBooks)
					books.POST("", controllers.AdminCreateBook)
					books.PUT("/:id", controllers.AdminUpdateBook)
					books.DELETE("/:id", controllers.AdminDeleteBook)
				}

				users := admin.Group("/users")
				{
					users.GET("", controllers.AdminListUsers)
					users.POST("", controllers.AdminCreateUser)
					users.PUT("/:id", controllers.AdminUpdateUser)
					users.DELETE("/:id", controllers.AdminDeleteUser)
				}

				imports := admin.Group("/import")
				{
					imports.POST("", controllers.AdminImportCSV)
					imports.GET("/runs", controllers.ListImportRuns)
					imports.GET("/runs/:id", controllers.GetImportRun)
				}
			}
		}
	}
}
