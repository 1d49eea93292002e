package v1

import (
	"github.com/firetm-simple/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// GC portal endpoints - gated by PIN possession, not by JWT
	gcController := NewGcController()
	gcController.RegisterPortalRoutes(router)

	// Office endpoints - protected by AuthMiddleware
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())

	projectGroup := authRouter.Group("/projects")
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
		projectGroup.GET("/:id/billing-rate", GetProjectBillingRate)
		projectGroup.GET("/:id/analytics", GetProjectAnalytics)
	}

	timeLogGroup := authRouter.Group("/time-logs")
	{
		timeLogGroup.GET("", ListTimeLogs)
		timeLogGroup.POST("", CreateTimeLog)
		timeLogGroup.GET("/:id", GetTimeLog)
		timeLogGroup.PUT("/:id", UpdateTimeLog)
		timeLogGroup.DELETE("/:id", DeleteTimeLog)
	}

	installerController := NewInstallerController()
	installerController.RegisterRoutes(authRouter)

	materialController := NewMaterialController()
	materialController.RegisterRoutes(authRouter)

	expenseController := NewExpenseController()
	expenseController.RegisterRoutes(authRouter)

	tmTagController := NewTMTagController()
	tmTagController.RegisterRoutes(authRouter)

	invoiceController := NewInvoiceController()
	invoiceController.RegisterRoutes(authRouter)

	payableController := NewPayableController()
	payableController.RegisterRoutes(authRouter)

	cashflowController := NewCashflowController()
	cashflowController.RegisterRoutes(authRouter)

	settingsController := NewSettingsController()
	settingsController.RegisterRoutes(authRouter)

	// PIN issuance and access logs stay office-side
	gcController.RegisterAdminRoutes(authRouter)

	// Admin endpoints - protected by AdminMiddleware
	adminGroup := authRouter.Group("/admin")
	adminGroup.Use(middleware.AdminMiddleware())
	{
		adminGroup.GET("/users", ListUsers)
	}
	settingsController.RegisterAdminRoutes(adminGroup)
}
