package fx

import (
	"database/sql"

	"lol-tracker/internal/config"
	"lol-tracker/internal/database"
	"lol-tracker/internal/db"
	"lol-tracker/internal/logger"
	"lol-tracker/internal/repository"
	"lol-tracker/internal/riot"
	"lol-tracker/internal/server"
	"lol-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewUserRepository),
	fx.Provide(repository.NewMatchRepository),
	// upstream client
	fx.Provide(riot.NewClient),
	// svc
	fx.Provide(service.NewUserService),
	fx.Provide(service.NewMatchHistoryService),
	// server
	fx.Provide(server.NewTrackerServer),
)
