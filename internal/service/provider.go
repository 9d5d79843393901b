package service

import (
	"context"

	"league-tracker/internal/api"
)

// MatchProvider is the upstream collaborator surface the services depend on.
// *api.RiotClient satisfies it; tests inject fakes.
type MatchProvider interface {
	GetAccountByRiotID(ctx context.Context, name, tag string) (*api.Account, error)
	GetMatchIDs(ctx context.Context, puuid string, count, start int) ([]string, error)
	GetMatch(ctx context.Context, matchID string) (*api.Match, error)
	GetTimeline(ctx context.Context, matchID string) (*api.Timeline, error)
}

var _ MatchProvider = (*api.RiotClient)(nil)
