package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/service"

	"github.com/rs/zerolog"
)

// TrackerServer is the JSON surface over the match and trend services.
type TrackerServer struct {
	matchSvc *service.MatchService
	trendSvc *service.TrendService
	logger   zerolog.Logger
}

func NewTrackerServer(matchSvc *service.MatchService, trendSvc *service.TrendService, logger zerolog.Logger) *TrackerServer {
	return &TrackerServer{matchSvc: matchSvc, trendSvc: trendSvc, logger: logger}
}

// Register wires every route onto the mux.
func (s *TrackerServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("/matchPreviews", s.handleMatchPreviews)
	mux.HandleFunc("/matchPreview", s.handleMatchPreview)
	mux.HandleFunc("/match", s.handleMatch)
	mux.HandleFunc("/trends", s.handleTrends)
	mux.HandleFunc("/breakdown", s.handleBreakdown)
	mux.HandleFunc("/eventTimeline", s.handleEventTimeline)
}

func (s *TrackerServer) handleMatchPreviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.RequestTimeout)
	defer cancel()

	name, tag, err := nameAndTag(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	previews, err := s.matchSvc.GetMatchPreviews(ctx, name, tag)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, previews)
}

func (s *TrackerServer) handleMatchPreview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.RequestTimeout)
	defer cancel()

	matchID, err := queryParam(r, "matchId")
	if err != nil {
		s.writeError(w, err)
		return
	}
	name, tag, err := nameAndTag(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	accountID, err := s.matchSvc.ResolveAccount(ctx, name, tag)
	if err != nil {
		s.writeError(w, err)
		return
	}

	preview, err := s.matchSvc.GetMatchPreview(ctx, matchID, accountID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, preview)
}

func (s *TrackerServer) handleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.RequestTimeout)
	defer cancel()

	matchID, err := queryParam(r, "id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	name, tag, err := nameAndTag(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	accountID, err := s.matchSvc.ResolveAccount(ctx, name, tag)
	if err != nil {
		s.writeError(w, err)
		return
	}

	record, err := s.matchSvc.GetMatchData(ctx, matchID, accountID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, record)
}

func (s *TrackerServer) handleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.TrendRequestTimeout)
	defer cancel()

	name, tag, err := nameAndTag(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sampleSizeRaw, err := queryParam(r, "sampleSize")
	if err != nil {
		s.writeError(w, err)
		return
	}
	sampleSize, err := strconv.Atoi(sampleSizeRaw)
	if err != nil || sampleSize <= 0 {
		s.writeError(w, fmt.Errorf("%w: sampleSize must be a positive integer", domain.ErrValidation))
		return
	}

	accountID, err := s.matchSvc.ResolveAccount(ctx, name, tag)
	if err != nil {
		s.writeError(w, err)
		return
	}

	report, err := s.trendSvc.GetTrendData(ctx, accountID, sampleSize)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, report)
}

func (s *TrackerServer) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.RequestTimeout)
	defer cancel()

	name, tag, err := nameAndTag(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	matchID, err := queryParam(r, "matchId")
	if err != nil {
		s.writeError(w, err)
		return
	}

	accountID, err := s.matchSvc.ResolveAccount(ctx, name, tag)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.matchSvc.GetBreakdown(ctx, matchID, accountID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, result)
}

func (s *TrackerServer) handleEventTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.RequestTimeout)
	defer cancel()

	name, tag, err := nameAndTag(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	matchID, err := queryParam(r, "matchId")
	if err != nil {
		s.writeError(w, err)
		return
	}

	accountID, err := s.matchSvc.ResolveAccount(ctx, name, tag)
	if err != nil {
		s.writeError(w, err)
		return
	}

	details, err := s.matchSvc.GetEventTimelineDetails(ctx, matchID, accountID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, details)
}

func nameAndTag(r *http.Request) (string, string, error) {
	name, err := queryParam(r, "name")
	if err != nil {
		return "", "", err
	}
	tag, err := queryParam(r, "tag")
	if err != nil {
		return "", "", err
	}
	return name, tag, nil
}

func queryParam(r *http.Request, key string) (string, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return "", fmt.Errorf("%w: missing %s query", domain.ErrValidation, key)
	}
	return v, nil
}

func (s *TrackerServer) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the error taxonomy to HTTP statuses. Upstream failures are
// surfaced, never converted into empty success.
func (s *TrackerServer) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedUpstream):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
	}

	if status >= 500 {
		s.logger.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		s.logger.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
