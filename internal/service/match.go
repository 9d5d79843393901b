package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	"league-tracker/internal/api"
	"league-tracker/internal/breakdown"
	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/normalizer"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type MatchService struct {
	riot   MatchProvider
	logger zerolog.Logger
}

func NewMatchService(riot MatchProvider, logger zerolog.Logger) *MatchService {
	return &MatchService{riot: riot, logger: logger}
}

// ResolveAccount turns a name+tag pair into the upstream player identifier.
func (s *MatchService) ResolveAccount(ctx context.Context, name, tag string) (string, error) {
	name, err := url.QueryUnescape(name)
	if err != nil {
		return "", fmt.Errorf("failed to unescape name: %w", err)
	}
	tag, err = url.QueryUnescape(tag)
	if err != nil {
		return "", fmt.Errorf("failed to unescape tag: %w", err)
	}

	account, err := s.riot.GetAccountByRiotID(ctx, name, tag)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Str("tag", tag).Msg("account lookup failed")
		return "", fmt.Errorf("account lookup failed: %w", err)
	}

	return account.PUUID, nil
}

// GetMatchData fetches the match and timeline documents for one match and
// normalizes them around the tracked player. The two documents are fetched
// concurrently.
func (s *MatchService) GetMatchData(ctx context.Context, matchID, playerID string) (*domain.MatchRecord, error) {
	match, timeline, err := s.fetchMatchPair(ctx, matchID)
	if err != nil {
		return nil, err
	}

	record, err := normalizer.Normalize(match, timeline, playerID)
	if err != nil {
		s.logger.Error().Err(err).Str("match_id", matchID).Msg("failed to normalize match")
		return nil, fmt.Errorf("failed to normalize match %s: %w", matchID, err)
	}

	return record, nil
}

// GetBreakdown builds the per-interval snapshot report for one match.
func (s *MatchService) GetBreakdown(ctx context.Context, matchID, playerID string) (*domain.Breakdown, error) {
	match, timeline, err := s.fetchMatchPair(ctx, matchID)
	if err != nil {
		return nil, err
	}

	record, err := normalizer.Normalize(match, timeline, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize match %s: %w", matchID, err)
	}

	result, err := breakdown.Build(record, timeline)
	if err != nil {
		return nil, fmt.Errorf("failed to build breakdown for %s: %w", matchID, err)
	}

	s.logger.Info().Str("match_id", matchID).Int("snapshots", len(result.Snapshots)).Msg("breakdown built")
	return result, nil
}

// EventTimelineDetails is the raw timeline with the participant roster
// enriched by role, champion and relative team.
type EventTimelineDetails struct {
	Participants  []domain.Participant `json:"participants"`
	FrameInterval int64                `json:"frameInterval"`
	Frames        []api.TimelineFrame  `json:"frames"`
}

func (s *MatchService) GetEventTimelineDetails(ctx context.Context, matchID, playerID string) (*EventTimelineDetails, error) {
	match, timeline, err := s.fetchMatchPair(ctx, matchID)
	if err != nil {
		return nil, err
	}

	record, err := normalizer.Normalize(match, timeline, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize match %s: %w", matchID, err)
	}

	return &EventTimelineDetails{
		Participants:  record.Participants,
		FrameInterval: timeline.Info.FrameInterval,
		Frames:        timeline.Info.Frames,
	}, nil
}

// GetMatchPreviews lists previews for the player's most recent matches.
// Non-standard game modes are skipped; any single fetch failure aborts the
// whole list.
func (s *MatchService) GetMatchPreviews(ctx context.Context, name, tag string) ([]domain.MatchPreview, error) {
	accountID, err := s.ResolveAccount(ctx, name, tag)
	if err != nil {
		return nil, err
	}

	matchIDs, err := s.riot.GetMatchIDs(ctx, accountID, constants.DefaultMatchListLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	previews := make([]domain.MatchPreview, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		preview, err := s.GetMatchPreview(ctx, matchID, accountID)
		if err != nil {
			return nil, err
		}
		if preview != nil {
			previews = append(previews, *preview)
		}
	}

	s.logger.Info().Str("account_id", accountID).Int("previews", len(previews)).Msg("match previews built")
	return previews, nil
}

// GetMatchPreview summarizes one match. Returns nil for matches outside the
// standard 5v5 mode.
func (s *MatchService) GetMatchPreview(ctx context.Context, matchID, accountID string) (*domain.MatchPreview, error) {
	match, err := s.riot.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match %s: %w", matchID, err)
	}

	if match.Info.GameMode != constants.StandardGameMode {
		return nil, nil
	}

	preview := &domain.MatchPreview{
		AccountID:         accountID,
		MatchID:           matchID,
		PlayerParticipant: accountID,
	}

	for _, p := range match.Info.Participants {
		if p.PUUID != accountID {
			continue
		}

		preview.PlayerChampion = formatChampionName(p.ChampionName)
		preview.Role = domain.RoleByPosition[p.TeamPosition]

		for _, other := range match.Info.Participants {
			if other.TeamPosition == p.TeamPosition && other.PUUID != accountID {
				preview.EnemyChampion = formatChampionName(other.ChampionName)
				preview.EnemyParticipant = other.PUUID
			}
		}

		winningTeam := 200
		if len(match.Info.Teams) > 0 && match.Info.Teams[0].Win {
			winningTeam = 100
		}
		preview.Win = p.TeamID == winningTeam
	}

	return preview, nil
}

var championNameBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// formatChampionName splits the first camel-case boundary of an upstream
// champion code into a display name ("MissFortune" -> "Miss Fortune"). Only
// the first boundary is split.
func formatChampionName(champion string) string {
	loc := championNameBoundary.FindStringIndex(champion)
	if loc == nil {
		return champion
	}
	return champion[:loc[0]+1] + " " + champion[loc[0]+1:]
}

func (s *MatchService) fetchMatchPair(ctx context.Context, matchID string) (*api.Match, *api.Timeline, error) {
	g, gCtx := errgroup.WithContext(ctx)
	var match *api.Match
	var timeline *api.Timeline

	g.Go(func() error {
		var err error
		match, err = s.riot.GetMatch(gCtx, matchID)
		return err
	})

	g.Go(func() error {
		var err error
		timeline, err = s.riot.GetTimeline(gCtx, matchID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("match_id", matchID).Msg("failed to fetch match documents")
		return nil, nil, fmt.Errorf("failed to fetch match %s: %w", matchID, err)
	}

	return match, timeline, nil
}
