package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ytgate/ytgate/internal/api/handlers"
	"github.com/ytgate/ytgate/internal/api/middleware"
	"github.com/ytgate/ytgate/internal/config"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
}

func NewRouter(cfg *config.Config, videoHandler *handlers.VideoHandler, searchHandler *handlers.SearchHandler, healthHandler *handlers.HealthHandler) *Router {
	// Set Gin mode
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Add middleware
	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())
	engine.Use(cors.New(corsConfig(&cfg.CORS)))

	// Discovery and liveness (no business logic)
	engine.GET("/", healthHandler.Discovery)

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API endpoints
	api := engine.Group("/api")
	{
		api.GET("/video_info", videoHandler.Info)   // /api/video_info
		api.GET("/download", videoHandler.Download) // /api/download
		api.GET("/search", searchHandler.Search)    // /api/search
		api.GET("/stats", healthHandler.Stats)      // /api/stats
	}

	return &Router{
		engine: engine,
		config: cfg,
	}
}

func corsConfig(cfg *config.CORSConfig) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.MaxAge = cfg.MaxAge
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return corsCfg
}

func (r *Router) Start() error {
	addr := r.config.Server.Host + ":" + r.config.Server.Port
	return r.engine.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
