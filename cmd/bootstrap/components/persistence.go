package components

import (
	"leave-ledger-api/internal/infra/db"
	"leave-ledger-api/internal/infra/readstore"
	"leave-ledger-api/internal/infra/uow"
	"leave-ledger-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewLeaveRequestReadStore,
			fx.As(new(queries.LeaveRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewBalanceReadStore,
			fx.As(new(queries.BalanceReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
