package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"league-tracker/internal/config"
	"league-tracker/internal/domain"

	"github.com/valyala/fasthttp"
)

// RiotClient talks to the Riot match-v5 and account-v1 APIs through the
// configured regional routing host.
type RiotClient struct {
	apiKey      string
	baseURL     string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors the X-App-Rate-Limit headers Riot attaches to every
// response: comma-separated "<requests>:<window-seconds>" buckets.
type RateLimitInfo struct {
	Limit     string    `json:"limit"`
	Count     string    `json:"count"`
	Retry     int       `json:"retry_after"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRiotClient(cfg *config.Config) *RiotClient {
	return &RiotClient{
		apiKey:  cfg.RiotAPIKey,
		baseURL: fmt.Sprintf("https://%s.api.riotgames.com", cfg.Region),
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *RiotClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *RiotClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-App-Rate-Limit")); limit != "" {
		c.rateLimit.Limit = limit
	}
	if count := string(resp.Header.Peek("X-App-Rate-Limit-Count")); count != "" {
		c.rateLimit.Count = count
	}
	if retry := string(resp.Header.Peek("Retry-After")); retry != "" {
		if val, err := strconv.Atoi(retry); err == nil {
			c.rateLimit.Retry = val
		}
	} else {
		c.rateLimit.Retry = 0
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// GetAccountByRiotID resolves a name+tag pair to an account.
func (c *RiotClient) GetAccountByRiotID(ctx context.Context, name, tag string) (*Account, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.baseURL, url.PathEscape(name), url.PathEscape(tag))
	return doRequest[Account](ctx, c, u)
}

// GetMatchIDs lists match ids for an account, most recent first.
func (c *RiotClient) GetMatchIDs(ctx context.Context, puuid string, count, start int) ([]string, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?count=%d&start=%d",
		c.baseURL, puuid, count, start)
	ids, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *RiotClient) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.baseURL, matchID)
	return doRequest[Match](ctx, c, u)
}

func (c *RiotClient) GetTimeline(ctx context.Context, matchID string) (*Timeline, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s/timeline", c.baseURL, matchID)
	return doRequest[Timeline](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *RiotClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
		}
	}

	client.updateRateLimit(resp)

	if err := statusError(resp.StatusCode()); err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedUpstream, err)
	}
	return &result, nil
}

func statusError(code int) error {
	switch {
	case code == fasthttp.StatusOK:
		return nil
	case code == fasthttp.StatusNotFound:
		return fmt.Errorf("%w: upstream returned 404", domain.ErrNotFound)
	case code == fasthttp.StatusTooManyRequests || code >= 500:
		return fmt.Errorf("%w: upstream returned %d", domain.ErrUpstreamUnavailable, code)
	default:
		return fmt.Errorf("upstream returned %d", code)
	}
}
