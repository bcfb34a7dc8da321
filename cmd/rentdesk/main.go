package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentdesk/internal/config"
	"github.com/smallbiznis/rentdesk/internal/migration"
	"github.com/smallbiznis/rentdesk/internal/observability"
	"github.com/smallbiznis/rentdesk/internal/server"
	"github.com/smallbiznis/rentdesk/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
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
