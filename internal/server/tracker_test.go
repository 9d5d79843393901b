package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"league-tracker/internal/api"
	"league-tracker/internal/config"
	"league-tracker/internal/domain"
	"league-tracker/internal/service"

	"github.com/rs/zerolog"
)

type stubProvider struct {
	err      error
	match    *api.Match
	timeline *api.Timeline
}

func (s *stubProvider) GetAccountByRiotID(ctx context.Context, name, tag string) (*api.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &api.Account{PUUID: "p1"}, nil
}

func (s *stubProvider) GetMatchIDs(ctx context.Context, puuid string, count, start int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []string{"m1"}, nil
}

func (s *stubProvider) GetMatch(ctx context.Context, matchID string) (*api.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.match, nil
}

func (s *stubProvider) GetTimeline(ctx context.Context, matchID string) (*api.Timeline, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.timeline, nil
}

func stubMatch() *api.Match {
	positions := []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}
	match := &api.Match{}
	match.Info.GameMode = "CLASSIC"
	match.Info.Teams = []api.TeamInfo{{TeamID: 100, Win: true}, {TeamID: 200}}
	for i := 0; i < 10; i++ {
		teamID := 100
		if i >= 5 {
			teamID = 200
		}
		match.Info.Participants = append(match.Info.Participants, api.MatchParticipant{
			PUUID:        "p" + strconv.Itoa(i+1),
			ChampionName: "Champion" + strconv.Itoa(i+1),
			TeamPosition: positions[i%5],
			TeamID:       teamID,
		})
	}
	return match
}

func stubTimeline(frameCount int) *api.Timeline {
	timeline := &api.Timeline{}
	timeline.Info.FrameInterval = 60000
	for f := 0; f < frameCount; f++ {
		frame := api.TimelineFrame{ParticipantFrames: make(map[string]api.ParticipantFrame)}
		for i := 1; i <= 10; i++ {
			frame.ParticipantFrames[strconv.Itoa(i)] = api.ParticipantFrame{
				ParticipantID: i,
				TotalGold:     500 * f,
			}
		}
		timeline.Info.Frames = append(timeline.Info.Frames, frame)
	}
	return timeline
}

func newTestServer(provider service.MatchProvider) *httptest.Server {
	logger := zerolog.Nop()
	matchSvc := service.NewMatchService(provider, logger)
	trendSvc := service.NewTrendService(provider, matchSvc, &config.Config{}, logger)
	tracker := NewTrackerServer(matchSvc, trendSvc, logger)

	mux := http.NewServeMux()
	tracker.Register(mux)
	return httptest.NewServer(mux)
}

func getStatus(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.StatusCode, body
}

func TestMissingQueryParam(t *testing.T) {
	srv := newTestServer(&stubProvider{})
	defer srv.Close()

	status, body := getStatus(t, srv.URL+"/matchPreviews?name=Player")
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if _, ok := body["error"]; !ok {
		t.Error("error body missing")
	}
}

func TestInvalidSampleSize(t *testing.T) {
	srv := newTestServer(&stubProvider{})
	defer srv.Close()

	for _, sample := range []string{"abc", "0", "-3"} {
		status, _ := getStatus(t, srv.URL+"/trends?name=Player&tag=NA1&sampleSize="+sample)
		if status != http.StatusBadRequest {
			t.Errorf("sampleSize=%s: status = %d, want 400", sample, status)
		}
	}
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"upstream down", domain.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"malformed upstream", domain.ErrMalformedUpstream, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&stubProvider{err: tt.err})
			defer srv.Close()

			status, _ := getStatus(t, srv.URL+"/matchPreviews?name=Player&tag=NA1")
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
		})
	}
}

func TestMatchEndpoint(t *testing.T) {
	srv := newTestServer(&stubProvider{match: stubMatch(), timeline: stubTimeline(3)})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/match?id=m1&name=Player&tag=NA1")
	if err != nil {
		t.Fatalf("GET /match: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var record domain.MatchRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if len(record.Participants) != 10 {
		t.Errorf("got %d participants, want 10", len(record.Participants))
	}
	if record.FrameCount() != 3 {
		t.Errorf("frame count = %d, want 3", record.FrameCount())
	}
}

func TestBreakdownEndpoint(t *testing.T) {
	srv := newTestServer(&stubProvider{match: stubMatch(), timeline: stubTimeline(4)})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/breakdown?matchId=m1&name=Player&tag=NA1")
	if err != nil {
		t.Fatalf("GET /breakdown: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result domain.Breakdown
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode breakdown: %v", err)
	}
	if len(result.Snapshots) != 3 {
		t.Errorf("got %d snapshots, want 3", len(result.Snapshots))
	}
}

func TestTrendsEndpoint(t *testing.T) {
	srv := newTestServer(&stubProvider{match: stubMatch(), timeline: stubTimeline(3)})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/trends?name=Player&tag=NA1&sampleSize=1")
	if err != nil {
		t.Fatalf("GET /trends: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var report domain.TrendReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Top.TotalMatches != 1 {
		t.Errorf("top total matches = %d, want 1", report.Top.TotalMatches)
	}
	if len(report.Support.Stats) != 12 {
		t.Errorf("support stat groups = %d, want 12", len(report.Support.Stats))
	}
}
