package catalog

import (
	"context"

	authdomain "github.com/abiramijewels/aurum/internal/auth/domain"
	"github.com/abiramijewels/aurum/internal/catalog/domain"
	"github.com/abiramijewels/aurum/internal/catalog/repository"
	"github.com/abiramijewels/aurum/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(func(svc authdomain.Service) domain.CredentialVerifier { return svc }),
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
