package service

import (
	"context"
	"fmt"
	"time"

	"league-tracker/internal/config"
	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/stats"

	"github.com/rs/zerolog"
)

type TrendService struct {
	riot     MatchProvider
	matchSvc *MatchService
	cfg      *config.Config
	logger   zerolog.Logger
}

func NewTrendService(riot MatchProvider, matchSvc *MatchService, cfg *config.Config, logger zerolog.Logger) *TrendService {
	return &TrendService{riot: riot, matchSvc: matchSvc, cfg: cfg, logger: logger}
}

// GetTrendData fetches a sample of matches sequentially and aggregates the
// per-role trend report. Fetches are deliberately paced with the configured
// buffer to stay under the upstream per-key rate ceiling; a single failed
// fetch aborts the whole computation.
func (s *TrendService) GetTrendData(ctx context.Context, accountID string, sampleSize int) (*domain.TrendReport, error) {
	matches, err := s.collectSample(ctx, accountID, sampleSize)
	if err != nil {
		return nil, err
	}

	report := &domain.TrendReport{
		Top:     s.roleTrend(matches, accountID, domain.RoleTop),
		Jungle:  s.roleTrend(matches, accountID, domain.RoleJungle),
		Mid:     s.roleTrend(matches, accountID, domain.RoleMid),
		ADC:     s.roleTrend(matches, accountID, domain.RoleADC),
		Support: s.roleTrend(matches, accountID, domain.RoleSupport),
	}

	s.logger.Info().Str("account_id", accountID).Int("matches", len(matches)).Msg("trend report built")
	return report, nil
}

func (s *TrendService) roleTrend(matches []*domain.MatchRecord, accountID string, role domain.Role) domain.RoleTrend {
	return domain.RoleTrend{
		TotalMatches: stats.TotalMatchesInRole(matches, accountID, role),
		Stats:        stats.BuildStatGroups(matches, accountID, role),
	}
}

func (s *TrendService) collectSample(ctx context.Context, accountID string, sampleSize int) ([]*domain.MatchRecord, error) {
	if s.cfg.FullReport {
		return s.collectFullReport(ctx, accountID)
	}

	matchIDs, err := s.riot.GetMatchIDs(ctx, accountID, sampleSize, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := make([]*domain.MatchRecord, 0, len(matchIDs))
	for i, matchID := range matchIDs {
		s.logger.Info().
			Str("match_id", matchID).
			Int("fetched", i+1).
			Int("sample", len(matchIDs)).
			Msg("retrieving match")

		record, err := s.matchSvc.GetMatchData(ctx, matchID, accountID)
		if err != nil {
			return nil, err
		}
		matches = append(matches, record)

		if err := s.pause(ctx, s.cfg.SampleBuffer); err != nil {
			return nil, err
		}
	}

	return matches, nil
}

// collectFullReport walks a multi-thousand-match id set in fixed batches via
// offset pagination, with the full-report buffer between fetches.
func (s *TrendService) collectFullReport(ctx context.Context, accountID string) ([]*domain.MatchRecord, error) {
	var matches []*domain.MatchRecord
	total := constants.FullReportBatchCount * constants.FullReportBatchSize

	for batch := 0; batch < constants.FullReportBatchCount; batch++ {
		matchIDs, err := s.riot.GetMatchIDs(ctx, accountID, constants.FullReportBatchSize, batch*constants.FullReportBatchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list match batch %d: %w", batch, err)
		}
		if len(matchIDs) == 0 {
			break
		}

		for _, matchID := range matchIDs {
			s.logger.Info().
				Str("match_id", matchID).
				Int("fetched", len(matches)+1).
				Int("sample", total).
				Msg("retrieving match")

			record, err := s.matchSvc.GetMatchData(ctx, matchID, accountID)
			if err != nil {
				return nil, err
			}
			matches = append(matches, record)

			if err := s.pause(ctx, s.cfg.FullReportBuffer); err != nil {
				return nil, err
			}
		}
	}

	return matches, nil
}

// pause is the inter-fetch backpressure delay. Not a performance knob: the
// upstream enforces per-key request ceilings, so the loop must stay
// sequential and gated.
func (s *TrendService) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
