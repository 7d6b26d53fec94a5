package server

import (
	"github.com/gin-gonic/gin"

	"resume-assistant/internal/analyses"
	"resume-assistant/internal/chat"
	"resume-assistant/internal/services/health"
	"resume-assistant/internal/shared/config"
	"resume-assistant/internal/shared/metrics"
	"resume-assistant/internal/shared/server/middleware"
)

// RouterDeps carries the handlers mounted on the engine.
type RouterDeps struct {
	Config   config.Config
	Health   *health.Service
	Analysis *analyses.Handler
	Chat     *chat.Handler
	Metrics  *metrics.Metrics
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigins),
	)

	if deps.Health == nil {
		deps.Health = health.NewService()
	}
	deps.Health.RegisterRoutes(r)
	if deps.Analysis != nil {
		deps.Analysis.RegisterRoutes(r)
	}
	if deps.Chat != nil {
		deps.Chat.RegisterRoutes(r)
	}
	if deps.Metrics != nil {
		r.GET("/metrics", deps.Metrics.Handler())
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
