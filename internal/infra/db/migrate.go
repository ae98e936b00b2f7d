package db

import (
	"context"
	"log/slog"

	"campreserve/internal/pkg/config"
	"campreserve/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies the versioned migration directory once, at startup. Schema
// changes never happen on a request path.
func Migrate(ctx context.Context, cfg config.DBConfig) error {
	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://" + cfg.MigrationsDir,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
