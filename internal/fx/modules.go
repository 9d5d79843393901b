package fx

import (
	"league-tracker/internal/api"
	"league-tracker/internal/config"
	"league-tracker/internal/logger"
	"league-tracker/internal/server"
	"league-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideMatchProvider(client *api.RiotClient) service.MatchProvider {
	return client
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api client
	fx.Provide(api.NewRiotClient),
	fx.Provide(ProvideMatchProvider),
	// svc
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewTrendService),
	// server
	fx.Provide(server.NewTrackerServer),
)
