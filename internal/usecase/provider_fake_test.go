package usecase

import (
	"context"
	"sync"

	"github.com/fantasyops/sleeper-mcp/internal/domain/league"
	"github.com/fantasyops/sleeper-mcp/internal/domain/matchup"
	"github.com/fantasyops/sleeper-mcp/internal/domain/nflstate"
	"github.com/fantasyops/sleeper-mcp/internal/domain/player"
	"github.com/fantasyops/sleeper-mcp/internal/domain/roster"
	"github.com/fantasyops/sleeper-mcp/internal/domain/user"
)

// fakeProvider is an in-memory SleeperProvider. Call counters are
// mutex-guarded because league assemblies hit the provider from
// multiple goroutines.
type fakeProvider struct {
	mu sync.Mutex

	state   nflstate.State
	stateOK bool

	users            map[string]user.User
	leaguesByUser    map[string][]league.League
	rostersByLeague  map[string][]roster.Roster
	membersByLeague  map[string][]user.LeagueUser
	matchupsByLeague map[string][]matchup.Matchup
	catalog          player.Catalog

	stateCalls   int
	userCalls    int
	playersCalls int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		state:            nflstate.State{Season: "2024", Week: 5, SeasonType: "regular", DisplayWeek: 5, Leg: 5},
		stateOK:          true,
		users:            make(map[string]user.User),
		leaguesByUser:    make(map[string][]league.League),
		rostersByLeague:  make(map[string][]roster.Roster),
		membersByLeague:  make(map[string][]user.LeagueUser),
		matchupsByLeague: make(map[string][]matchup.Matchup),
		catalog:          make(player.Catalog),
	}
}

func (f *fakeProvider) GetNFLState(_ context.Context) (nflstate.State, bool) {
	f.mu.Lock()
	f.stateCalls++
	f.mu.Unlock()
	return f.state, f.stateOK
}

func (f *fakeProvider) GetUserByUsername(_ context.Context, username string) (user.User, bool) {
	f.mu.Lock()
	f.userCalls++
	f.mu.Unlock()
	u, ok := f.users[username]
	return u, ok
}

func (f *fakeProvider) GetUserLeagues(_ context.Context, userID, season string) []league.League {
	return f.leaguesByUser[userID+"/"+season]
}

func (f *fakeProvider) GetLeagueRosters(_ context.Context, leagueID string) []roster.Roster {
	return f.rostersByLeague[leagueID]
}

func (f *fakeProvider) GetLeagueUsers(_ context.Context, leagueID string) []user.LeagueUser {
	return f.membersByLeague[leagueID]
}

func (f *fakeProvider) GetLeagueMatchups(_ context.Context, leagueID string, _ int) []matchup.Matchup {
	return f.matchupsByLeague[leagueID]
}

func (f *fakeProvider) GetPlayers(_ context.Context) player.Catalog {
	f.mu.Lock()
	f.playersCalls++
	f.mu.Unlock()
	return f.catalog
}

// seedLeague wires one league where alice (U1, roster 1) faces bob
// (U2, roster 2) in week 5.
func (f *fakeProvider) seedLeague(leagueID string) {
	f.rostersByLeague[leagueID] = []roster.Roster{
		{ID: 1, OwnerID: "U1", Starters: []string{"P1", "P2"}, Reserve: []string{"P3"}, Taxi: []string{"P4"}},
		{ID: 2, OwnerID: "U2", Starters: []string{"P5"}},
	}
	f.membersByLeague[leagueID] = []user.LeagueUser{
		{ID: "U1", Username: "alice", DisplayName: "Alice"},
		{ID: "U2", Username: "bob", DisplayName: "Bob"},
	}
	f.matchupsByLeague[leagueID] = []matchup.Matchup{
		{RosterID: 1, MatchupID: 9},
		{RosterID: 2, MatchupID: 9},
	}
}

func (f *fakeProvider) seedAlice() {
	f.users["alice"] = user.User{ID: "U1", Username: "alice", DisplayName: "Alice"}
	f.catalog = player.Catalog{
		"P1": {ID: "P1", Name: "Josh Allen", Position: "QB", Team: "BUF"},
		"P2": {ID: "P2", Name: "Saquon Barkley", Position: "RB", Team: "PHI"},
		"P3": {ID: "P3", Name: "Jordan Love", Position: "QB", Team: "GB"},
		"P4": {ID: "P4", Name: "Taxi Rookie", Position: "WR", Team: "DAL"},
		"P5": {ID: "P5", Name: "Lamar Jackson", Position: "QB", Team: "BAL"},
	}
}
