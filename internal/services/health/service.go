package health

import (
	"github.com/gin-gonic/gin"

	"resume-assistant/internal/shared/server/respond"
)

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Banner returns the root liveness payload.
func (s *Service) Banner() map[string]string {
	return map[string]string{"message": "Backend is running"}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]bool {
	return map[string]bool{"ok": true}
}

// RegisterRoutes attaches the liveness routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/", func(c *gin.Context) {
		respond.OK(c, s.Banner())
	})
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, s.Status())
	})
}
