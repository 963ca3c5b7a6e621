package components

import (
	"leave-ledger-api/internal/handler"
	"leave-ledger-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLeaveHandler,
		api.NewBalanceHandler,
	),
	fx.Invoke(handler.NewRouter),
)
