package orders

import (
	"github.com/abiramijewels/aurum/internal/orders/repository"
	"github.com/abiramijewels/aurum/internal/orders/service"
	"go.uber.org/fx"
)

var Module = fx.Module("orders.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
