package sleeper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/fantasyops/sleeper-mcp/internal/domain/league"
	"github.com/fantasyops/sleeper-mcp/internal/domain/matchup"
	"github.com/fantasyops/sleeper-mcp/internal/domain/nflstate"
	"github.com/fantasyops/sleeper-mcp/internal/domain/player"
	"github.com/fantasyops/sleeper-mcp/internal/domain/roster"
	"github.com/fantasyops/sleeper-mcp/internal/domain/user"
	"github.com/fantasyops/sleeper-mcp/internal/platform/logging"
	"github.com/fantasyops/sleeper-mcp/internal/platform/resilience"
)

const (
	defaultBaseURL = "https://api.sleeper.app"
	defaultTimeout = 15 * time.Second

	// Only the username lookup retries; every other endpoint gets a
	// single attempt.
	defaultUserLookupTimeout = 10 * time.Second
	defaultUserLookupRetries = 2

	// The player catalog runs to several MB; everything else is small.
	maxResponseBytes = 32 << 20
)

var errSleeperTransient = crerr.New("sleeper transient failure")

type ClientConfig struct {
	HTTPClient        *http.Client
	BaseURL           string
	Timeout           time.Duration
	UserLookupTimeout time.Duration
	UserLookupRetries int
	Logger            *logging.Logger
	CircuitBreaker    resilience.CircuitBreakerConfig
}

// Client is a read-only Sleeper API client. It converts every upstream
// failure into typed absence at this boundary: singletons report
// presence with a bool, collections come back empty. The configuration
// is fixed at construction; there is no process-wide mutable client
// state.
type Client struct {
	httpClient        *http.Client
	baseURL           string
	userLookupTimeout time.Duration
	userLookupRetries int
	backoffUnit       time.Duration
	logger            *logging.Logger
	breaker           *resilience.CircuitBreaker
	circuitEnabled    bool
	flight            resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	userLookupTimeout := cfg.UserLookupTimeout
	if userLookupTimeout <= 0 {
		userLookupTimeout = defaultUserLookupTimeout
	}
	userLookupRetries := cfg.UserLookupRetries
	if userLookupRetries < 0 {
		userLookupRetries = defaultUserLookupRetries
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:        httpClient,
		baseURL:           baseURL,
		userLookupTimeout: userLookupTimeout,
		userLookupRetries: userLookupRetries,
		backoffUnit:       time.Second,
		logger:            logger,
		breaker:           resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled:    breakerCfg.Enabled,
	}
}

// GetNFLState fetches the current season/week anchor.
func (c *Client) GetNFLState(ctx context.Context) (nflstate.State, bool) {
	var dto *stateDTO
	if !c.getJSON(ctx, "/v1/state/nfl", 0, 0, &dto) || dto == nil {
		return nflstate.State{}, false
	}
	return dto.toState(), true
}

// GetUserByUsername resolves a username to its account record. Unknown
// usernames come back as 404 or a null body upstream; both are absence.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (user.User, bool) {
	var dto *userDTO
	path := "/v1/user/" + url.PathEscape(username)
	if !c.getJSON(ctx, path, c.userLookupRetries, c.userLookupTimeout, &dto) || dto == nil || dto.UserID == "" {
		return user.User{}, false
	}
	return dto.toUser(), true
}

// GetUserLeagues lists the user's NFL leagues for one season.
func (c *Client) GetUserLeagues(ctx context.Context, userID, season string) []league.League {
	var dtos []leagueDTO
	path := fmt.Sprintf("/v1/user/%s/leagues/nfl/%s", url.PathEscape(userID), url.PathEscape(season))
	if !c.getJSON(ctx, path, 0, 0, &dtos) {
		return nil
	}
	out := make([]league.League, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toLeague())
	}
	return out
}

// GetLeagueRosters lists every roster in a league.
func (c *Client) GetLeagueRosters(ctx context.Context, leagueID string) []roster.Roster {
	var dtos []rosterDTO
	path := fmt.Sprintf("/v1/league/%s/rosters", url.PathEscape(leagueID))
	if !c.getJSON(ctx, path, 0, 0, &dtos) {
		return nil
	}
	out := make([]roster.Roster, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toRoster())
	}
	return out
}

// GetLeagueUsers lists league membership records.
func (c *Client) GetLeagueUsers(ctx context.Context, leagueID string) []user.LeagueUser {
	var dtos []leagueUserDTO
	path := fmt.Sprintf("/v1/league/%s/users", url.PathEscape(leagueID))
	if !c.getJSON(ctx, path, 0, 0, &dtos) {
		return nil
	}
	out := make([]user.LeagueUser, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toLeagueUser())
	}
	return out
}

// GetLeagueMatchups lists matchup entries for one week.
func (c *Client) GetLeagueMatchups(ctx context.Context, leagueID string, week int) []matchup.Matchup {
	var dtos []matchupDTO
	path := fmt.Sprintf("/v1/league/%s/matchups/%d", url.PathEscape(leagueID), week)
	if !c.getJSON(ctx, path, 0, 0, &dtos) {
		return nil
	}
	out := make([]matchup.Matchup, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, matchup.Matchup{RosterID: dto.RosterID, MatchupID: dto.MatchupID})
	}
	return out
}

// GetPlayers fetches the bulk NFL player table. Concurrent callers
// share one in-flight fetch through the singleflight in getJSON; a
// failed fetch yields an empty catalog and the next caller goes
// upstream again.
func (c *Client) GetPlayers(ctx context.Context) player.Catalog {
	var dtos map[string]playerDTO
	if !c.getJSON(ctx, "/v1/players/nfl", 0, 0, &dtos) {
		return player.Catalog{}
	}
	catalog := make(player.Catalog, len(dtos))
	for id, dto := range dtos {
		p, ok := dto.toPlayer(id)
		if !ok {
			continue
		}
		catalog[id] = p
	}
	return catalog
}

// getJSON performs one logical lookup: circuit check, singleflight
// dedup, bounded retry, decode. It reports success with a bool; the
// reason for a failure is logged, never returned.
func (c *Client) getJSON(ctx context.Context, path string, retries int, attemptTimeout time.Duration, target any) bool {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sleeper circuit breaker rejected request",
				"path", path,
				"state", c.breaker.State(),
			)
			return false
		}
	}

	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, path, retries, attemptTimeout)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errSleeperTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return false
	}

	raw, ok := out.([]byte)
	if !ok {
		return false
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		c.logger.WarnContext(ctx, "decode sleeper payload failed", "path", path, "error", err)
		return false
	}
	return true
}

// executeRequest runs the bounded retry loop: up to retries+1 attempts
// with linear backoff (1s, 2s, ...) between them. Any transport error
// or non-2xx status is retried; the backoff wait aborts as soon as the
// caller's context is cancelled. Every failed attempt logs one
// diagnostic line, which never changes the returned value.
func (c *Client) executeRequest(ctx context.Context, path string, retries int, attemptTimeout time.Duration) ([]byte, error) {
	fullURL := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		raw, err := c.attempt(ctx, fullURL, attemptTimeout)
		if err == nil {
			return raw, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
		c.logger.WarnContext(ctx, "sleeper request failed",
			"path", path,
			"attempt", attempt+1,
			"error", err,
		)

		if attempt == retries {
			break
		}
		backoff := time.Duration(attempt+1) * c.backoffUnit
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("sleeper request failed")
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, fullURL string, attemptTimeout time.Duration) ([]byte, error) {
	attemptCtx := ctx
	if attemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, attemptTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errSleeperTransient, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errSleeperTransient, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if isTransientStatus(resp.StatusCode) {
			return nil, fmt.Errorf("%w: upstream status=%d", errSleeperTransient, resp.StatusCode)
		}
		return nil, fmt.Errorf("upstream status=%d", resp.StatusCode)
	}
	return raw, nil
}

func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
