package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mkraj/jobtrack/internal/api/handler"
	"github.com/mkraj/jobtrack/internal/api/middleware"
	"github.com/mkraj/jobtrack/internal/config"
	"github.com/mkraj/jobtrack/internal/logger"
	"github.com/mkraj/jobtrack/internal/service"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	tracker *service.TrackerService,
	cfg *config.Config,
	log *logger.Logger,
) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	recordHandler := handler.NewRecordHandler(tracker)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Records
		v1.POST("/records", recordHandler.CreateRecord)
		v1.GET("/records", recordHandler.ListRecords)
		v1.GET("/records/:id", recordHandler.GetRecord)
		v1.PATCH("/records/:id/status", recordHandler.UpdateStatus)
		v1.PUT("/records/:id/rounds", recordHandler.UpdateRounds)
		v1.PUT("/records/:id/notes", recordHandler.UpdateNotes)
		v1.DELETE("/records/:id", recordHandler.DeleteRecord)

		// Stats
		v1.GET("/stats", recordHandler.GetStats)
	}

	return r
}
