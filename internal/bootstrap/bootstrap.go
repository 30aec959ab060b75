// Package bootstrap performs the one-off deployment initialization of the
// database schema. It replaces startup side effects: the server itself never
// issues DDL, operators run `deliverytrack --bootstrap` once per deployment
// and the guarded statements make repeated runs harmless.
package bootstrap

import (
	"context"
	"log/slog"

	"github.com/kdelarosa/deliverytrack/internal/config"
	"github.com/kdelarosa/deliverytrack/internal/storage/postgres"
)

// Run connects to the configured database, ensures the schema exists and
// disconnects.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	storage, err := postgres.New(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	if err := storage.Bootstrap(ctx); err != nil {
		return err
	}

	logger.Info("database schema bootstrapped")
	return nil
}
