package main

import (
	"github.com/abiramijewels/aurum/internal/clock"
	"github.com/abiramijewels/aurum/internal/config"
	"github.com/abiramijewels/aurum/internal/logger"
	"github.com/abiramijewels/aurum/internal/seed"
	"github.com/abiramijewels/aurum/internal/server"
	"github.com/abiramijewels/aurum/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		// Schema and demo data land before the domain services load.
		seed.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
