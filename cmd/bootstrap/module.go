package bootstrap

import (
	"booking-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	RedisModule,
	JWTModule,
	InfraModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)
