package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig настройки роутера
type RouterConfig struct {
	Mode         string
	MaxBodyBytes int64
}

// NewRouter собирает gin.Engine со всеми маршрутами
func NewRouter(h *Handler, cfg RouterConfig, logger *zap.Logger) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(RequestID())
	r.Use(Recovery(logger))
	r.Use(Logger(logger))
	r.Use(CORS())

	r.GET("/health", h.Health)

	limited := r.Group("/", BodyLimit(cfg.MaxBodyBytes))
	{
		limited.POST("/analyze-note", h.AnalyzeNote)
		limited.POST("/analyze-wound", h.AnalyzeWound)
		limited.OPTIONS("/analyze-wound", h.Preflight)
	}

	return r
}
