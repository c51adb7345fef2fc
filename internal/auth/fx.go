package auth

import (
	"github.com/abiramijewels/aurum/internal/auth/repository"
	"github.com/abiramijewels/aurum/internal/auth/service"
	"github.com/abiramijewels/aurum/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
)
