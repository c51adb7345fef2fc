package settings

import (
	"context"

	"github.com/abiramijewels/aurum/internal/settings/domain"
	"github.com/abiramijewels/aurum/internal/settings/repository"
	"github.com/abiramijewels/aurum/internal/settings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Invoke(loadOnStart),
)

func loadOnStart(lc fx.Lifecycle, svc domain.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.Load(ctx)
		},
	})
}
