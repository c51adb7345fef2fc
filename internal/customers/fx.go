package customers

import (
	"github.com/abiramijewels/aurum/internal/customers/repository"
	"github.com/abiramijewels/aurum/internal/customers/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customers.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
