package usecase

import (
	"context"

	"github.com/fantasyops/sleeper-mcp/internal/domain/league"
	"github.com/fantasyops/sleeper-mcp/internal/domain/matchup"
	"github.com/fantasyops/sleeper-mcp/internal/domain/nflstate"
	"github.com/fantasyops/sleeper-mcp/internal/domain/player"
	"github.com/fantasyops/sleeper-mcp/internal/domain/roster"
	"github.com/fantasyops/sleeper-mcp/internal/domain/user"
)

// SleeperProvider is the read-only contract against the remote Sleeper
// data source. Transport failures and upstream not-found are already
// converted to typed absence behind this boundary: singletons report
// presence with a bool, collections come back empty. Callers must treat
// absent and empty as "not found", never as a fault.
type SleeperProvider interface {
	// GetNFLState returns the current season/week anchor.
	GetNFLState(ctx context.Context) (nflstate.State, bool)
	// GetUserByUsername resolves a username to a stable identity. This
	// is the only retried lookup upstream.
	GetUserByUsername(ctx context.Context, username string) (user.User, bool)
	// GetUserLeagues lists the user's leagues for one season.
	GetUserLeagues(ctx context.Context, userID, season string) []league.League
	// GetLeagueRosters lists every roster in a league.
	GetLeagueRosters(ctx context.Context, leagueID string) []roster.Roster
	// GetLeagueUsers lists league membership records.
	GetLeagueUsers(ctx context.Context, leagueID string) []user.LeagueUser
	// GetLeagueMatchups lists matchup entries for one week.
	GetLeagueMatchups(ctx context.Context, leagueID string, week int) []matchup.Matchup
	// GetPlayers fetches the bulk player table.
	GetPlayers(ctx context.Context) player.Catalog
}
