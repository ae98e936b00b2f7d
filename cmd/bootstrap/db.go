package bootstrap

import (
	"context"

	"campreserve/internal/infra/db"
	"campreserve/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// RunMigrations applies versioned migrations once at startup, before the
// server takes traffic. Schema changes never happen on a request path.
func RunMigrations(cfg config.Config, _ *pgxpool.Pool) error {
	return db.Migrate(context.Background(), cfg.DB)
}
