package bootstrap

import (
	"time"

	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, duration)
}
