package di

import (
	"go.uber.org/fx"

	"github.com/kdelarosa/deliverytrack/internal/app"
	"github.com/kdelarosa/deliverytrack/internal/config"
	"github.com/kdelarosa/deliverytrack/internal/logger"
	"github.com/kdelarosa/deliverytrack/internal/server/http/handlers"
	"github.com/kdelarosa/deliverytrack/internal/server/http/router"
	"github.com/kdelarosa/deliverytrack/internal/storage/postgres"
	"github.com/kdelarosa/deliverytrack/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.DeliveryFacade) handlers.DeliveryFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
