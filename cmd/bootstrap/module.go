package bootstrap

import (
	"leave-ledger-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	KafkaModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
