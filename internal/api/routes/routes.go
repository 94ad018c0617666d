package routes

import (
	"lead-rotation-backend/internal/api/handlers"
	"lead-rotation-backend/internal/api/middleware"
	"lead-rotation-backend/internal/auth"
	"lead-rotation-backend/internal/config"
	"lead-rotation-backend/internal/repository"
	"lead-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	queueRepo := repository.NewQueueRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	rosterRepo := repository.NewRosterRepository(db)
	absenceRepo := repository.NewAbsenceRepository(db)
	rotationLogRepo := repository.NewRotationLogRepository(db)
	webhookLogRepo := repository.NewWebhookLogRepository(db)

	// Initialize services
	queueService := service.NewQueueService(queueRepo, validator)
	agentService := service.NewAgentService(agentRepo, queueRepo, absenceRepo, validator)
	rotationService := service.NewRotationService(queueRepo, agentRepo, rosterRepo, absenceRepo)
	crmService := service.NewCRMService(cfg)
	syncService := service.NewSyncService(agentRepo, webhookLogRepo, crmService)
	statsService := service.NewStatisticsService(queueRepo, rotationLogRepo)
	auditService := service.NewAuditService(queueRepo, rotationLogRepo)

	// Initialize auth
	authService := auth.NewAuthService(cfg)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	queueHandler := handlers.NewQueueHandler(queueService, rotationService, syncService, statsService, auditService)
	rosterHandler := handlers.NewRosterHandler(rotationService)
	agentHandler := handlers.NewAgentHandler(agentService)
	syncHandler := handlers.NewSyncHandler(syncService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Queue routes
		queues := v1.Group("/queues")
		{
			queues.GET("", queueHandler.ListQueues)
			queues.POST("", queueHandler.CreateQueue)
			queues.GET("/:id", queueHandler.GetQueue)
			queues.PUT("/:id", queueHandler.UpdateQueue)
			queues.DELETE("/:id", queueHandler.DeleteQueue)
			queues.POST("/:id/advance", queueHandler.AdvanceQueue)
			queues.POST("/:id/sync", queueHandler.SyncQueue)
			queues.GET("/:id/statistics", queueHandler.GetQueueStatistics)
			queues.GET("/:id/log", queueHandler.GetQueueLog)
			queues.GET("/:id/roster", rosterHandler.ListRoster)
			queues.POST("/:id/roster", rosterHandler.AddMember)
			queues.DELETE("/:id/roster/:agentId", rosterHandler.RemoveMember)
		}

		// Agent routes
		agents := v1.Group("/agents")
		{
			agents.GET("", agentHandler.ListAgents)
			agents.POST("", agentHandler.CreateAgent)
			agents.GET("/available", agentHandler.ListAvailableAgents)
			agents.GET("/:id", agentHandler.GetAgent)
			agents.PUT("/:id", agentHandler.UpdateAgent)
			agents.DELETE("/:id", agentHandler.DeleteAgent)
			agents.GET("/:id/absences", agentHandler.ListAbsences)
			agents.POST("/:id/absences", agentHandler.CreateAbsence)
			agents.DELETE("/:id/absences/:absenceId", agentHandler.DeleteAbsence)
		}

		// Webhook log routes
		webhookLogs := v1.Group("/webhook-logs")
		{
			webhookLogs.GET("", syncHandler.ListWebhookLogs)
			webhookLogs.POST("/:id/resend", syncHandler.ResendWebhook)
		}
	}

	return router
}
