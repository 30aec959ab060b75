package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/kdelarosa/deliverytrack/internal/bootstrap"
	"github.com/kdelarosa/deliverytrack/internal/config"
	"github.com/kdelarosa/deliverytrack/internal/di"
	"github.com/kdelarosa/deliverytrack/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if cfg.Bootstrap {
		if err := bootstrap.Run(ctx, cfg, logger.New()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to bootstrap database: %v\n", err)
			os.Exit(1)
		}
		return
	}

	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		di.Module(),
	)

	run(ctx, app)
}
