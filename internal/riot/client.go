package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"lol-tracker/internal/config"
	"lol-tracker/internal/constants"

	"github.com/valyala/fasthttp"
)

// Client talks to the Riot REST API. It is stateless: only the API key and
// endpoint hosts are carried.
type Client struct {
	apiKey      string
	platformURL string
	regionalURL string
	timeout     time.Duration
	client      *fasthttp.Client
}

func NewClient(cfg *config.Config) *Client {
	timeout := cfg.RiotTimeout
	if timeout == 0 {
		timeout = constants.ExternalAPITimeout
	}
	return &Client{
		apiKey:      cfg.RiotAPIKey,
		platformURL: cfg.RiotPlatformURL,
		regionalURL: cfg.RiotRegionalURL,
		timeout:     timeout,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// ResolveSummoner resolves a summoner name to its stable identifiers.
func (c *Client) ResolveSummoner(ctx context.Context, name string) (*Summoner, error) {
	uri := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-name/%s", c.platformURL, url.PathEscape(name))
	body, err := c.get(ctx, uri)
	if err != nil {
		return nil, err
	}

	var summoner Summoner
	if err := json.Unmarshal(body, &summoner); err != nil {
		return nil, fmt.Errorf("%w: summoner payload: %v", ErrMalformedResponse, err)
	}
	if summoner.ID == "" {
		return nil, fmt.Errorf("%w: summoner response missing id", ErrMalformedResponse)
	}
	return &summoner, nil
}

// RecentMatchIDs lists the most recent match ids for a puuid,
// most-recent-first, capped at constants.MatchHistoryCount.
func (c *Client) RecentMatchIDs(ctx context.Context, puuid string) ([]string, error) {
	uri := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		c.regionalURL, url.PathEscape(puuid), constants.MatchHistoryCount)
	body, err := c.get(ctx, uri)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("%w: expected a list of match ids: %v", ErrMalformedResponse, err)
	}
	// a JSON null unmarshals into a nil slice without error
	if ids == nil {
		return nil, fmt.Errorf("%w: expected a list of match ids, got null", ErrMalformedResponse)
	}
	return ids, nil
}

// MatchDetail fetches one match. Both metadata and info must be present.
func (c *Client) MatchDetail(ctx context.Context, matchID string) (*MatchDetail, error) {
	uri := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.regionalURL, url.PathEscape(matchID))
	body, err := c.get(ctx, uri)
	if err != nil {
		return nil, err
	}

	var detail MatchDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("%w: match payload: %v", ErrMalformedResponse, err)
	}
	if detail.Metadata == nil {
		return nil, fmt.Errorf("%w: match response missing metadata", ErrMalformedResponse)
	}
	if detail.Info == nil {
		return nil, fmt.Errorf("%w: match response missing info", ErrMalformedResponse)
	}
	return &detail, nil
}

// FetchAllRecent composes resolve, list and per-id detail fetches into the
// combined records ingestion consumes. Fetches run sequentially; the first
// upstream failure aborts the whole batch.
func (c *Client) FetchAllRecent(ctx context.Context, name string) ([]CombinedMatch, error) {
	summoner, err := withTimeout(ctx, c.timeout, func(ctx context.Context) (*Summoner, error) {
		return c.ResolveSummoner(ctx, name)
	})
	if err != nil {
		return nil, err
	}

	ids, err := withTimeout(ctx, c.timeout, func(ctx context.Context) ([]string, error) {
		return c.RecentMatchIDs(ctx, summoner.Puuid)
	})
	if err != nil {
		return nil, err
	}

	matches := make([]CombinedMatch, 0, len(ids))
	for _, id := range ids {
		detail, err := withTimeout(ctx, c.timeout, func(ctx context.Context) (*MatchDetail, error) {
			return c.MatchDetail(ctx, id)
		})
		if err != nil {
			return nil, err
		}
		matches = append(matches, detail.Combined())
	}
	return matches, nil
}

// withTimeout bounds a single upstream call, the way the transport layer
// alone would not.
func withTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return fn(callCtx)
}

func (c *Client) get(ctx context.Context, uri string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", c.apiKey)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode()}
	}

	// the response buffer is pooled, copy before release
	return append([]byte(nil), resp.Body()...), nil
}
