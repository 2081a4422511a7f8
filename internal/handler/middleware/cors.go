package middleware

import (
	"log/slog"
	"slices"

	"booking-engine/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: append(slices.Clone(cfg.ExposeHeaders), requestIDHeader),
		MaxAge:        cfg.MaxAge,
	}
	// cors rejects a wildcard origin combined with credentials.
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = cfg.AllowCredentials
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
