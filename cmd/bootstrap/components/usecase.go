package components

import (
	"leave-ledger-api/internal/pkg/clock"
	"leave-ledger-api/internal/usecase/commands"
	"leave-ledger-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewLeaveUseCase,
		queries.NewLeaveQueries,
	),
)
