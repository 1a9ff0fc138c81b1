package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/fantasyops/sleeper-mcp/internal/domain/lineup"
	"github.com/fantasyops/sleeper-mcp/internal/domain/matchup"
	"github.com/fantasyops/sleeper-mcp/internal/domain/nflstate"
	"github.com/fantasyops/sleeper-mcp/internal/domain/player"
	"github.com/fantasyops/sleeper-mcp/internal/domain/roster"
	"github.com/fantasyops/sleeper-mcp/internal/domain/user"
	"github.com/fantasyops/sleeper-mcp/internal/platform/logging"
)

const unknownOwnerName = "Unknown"

// AssembleContext carries the lookups shared by every league in a
// multi-league batch: the week anchor, the resolved identity, and the
// bulk player catalog. The catalog is read-only once fetched and safe
// to share across concurrent assemblies.
type AssembleContext struct {
	State   nflstate.State
	User    user.User
	Catalog player.Catalog
}

// LineupService joins roster, matchup, membership, and player-catalog
// data for one user in one league into a single lineup view.
type LineupService struct {
	provider SleeperProvider
	logger   *logging.Logger
}

func NewLineupService(provider SleeperProvider, logger *logging.Logger) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupService{provider: provider, logger: logger}
}

// Assemble resolves everything itself and builds the current-week
// lineup for one league.
func (s *LineupService) Assemble(ctx context.Context, username, leagueID string) (lineup.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Assemble")
	defer span.End()

	state, err := resolveState(ctx, s.provider)
	if err != nil {
		return lineup.View{}, err
	}
	u, err := resolveUser(ctx, s.provider, username)
	if err != nil {
		return lineup.View{}, err
	}

	return s.AssembleWith(ctx, AssembleContext{State: state, User: u}, leagueID)
}

// AssembleWith builds the lineup for one league from a pre-resolved
// context. A nil catalog in the context is fetched on demand.
func (s *LineupService) AssembleWith(ctx context.Context, ac AssembleContext, leagueID string) (lineup.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.AssembleWith")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return lineup.View{}, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	week := ac.State.Week

	// Rosters, membership, and matchups are independent lookups once
	// the identity and week are known.
	var (
		rosters  []roster.Roster
		members  []user.LeagueUser
		matchups []matchup.Matchup
	)
	var wg conc.WaitGroup
	wg.Go(func() { rosters = s.provider.GetLeagueRosters(ctx, leagueID) })
	wg.Go(func() { members = s.provider.GetLeagueUsers(ctx, leagueID) })
	wg.Go(func() { matchups = s.provider.GetLeagueMatchups(ctx, leagueID, week) })
	wg.Wait()

	if len(rosters) == 0 {
		return lineup.View{}, fmt.Errorf("%w: %s", ErrLeagueUnavailable, leagueID)
	}

	mine, ok := roster.FindByOwner(rosters, ac.User.ID)
	if !ok {
		return lineup.View{}, fmt.Errorf("%w: '%s' in league %s", ErrUserNotInLeague, ac.User.Username, leagueID)
	}

	if len(matchups) == 0 {
		return lineup.View{}, fmt.Errorf("%w: league %s week %d", ErrMatchupsUnavailable, leagueID, week)
	}
	if _, ok := matchup.FindByRoster(matchups, mine.ID); !ok {
		return lineup.View{}, fmt.Errorf("%w: week %d", ErrNoMatchupForWeek, week)
	}

	opponent := s.resolveOpponent(matchups, rosters, user.IndexByID(members), mine.ID)

	catalog := ac.Catalog
	if catalog == nil {
		catalog = s.provider.GetPlayers(ctx)
	}
	if len(catalog) == 0 {
		s.logger.WarnContext(ctx, "player catalog empty, lineup slots will be unenriched",
			"league_id", leagueID,
			"week", week,
		)
	}

	displayName := ac.User.DisplayName
	if displayName == "" {
		displayName = ac.User.Username
	}

	return lineup.View{
		User:     lineup.Owner{Username: ac.User.Username, DisplayName: displayName},
		Week:     week,
		Season:   ac.State.Season,
		RosterID: mine.ID,
		Starters: lineup.Slots(catalog.Enrich(mine.Starters)),
		Bench:    lineup.Slots(catalog.Enrich(mine.Bench())),
		Opponent: opponent,
	}, nil
}

// resolveOpponent locates the other roster in this week's matchup pair.
// A pairing with no partner yields nil, which is a bye week rather than
// a failure.
func (s *LineupService) resolveOpponent(
	matchups []matchup.Matchup,
	rosters []roster.Roster,
	members map[string]user.LeagueUser,
	rosterID int,
) *lineup.Opponent {
	oppRosterID, ok := matchup.OpponentRosterID(matchups, rosterID)
	if !ok {
		return nil
	}
	oppRoster, ok := roster.FindByID(rosters, oppRosterID)
	if !ok {
		return nil
	}

	opp := &lineup.Opponent{
		RosterID:    oppRoster.ID,
		Username:    unknownOwnerName,
		DisplayName: unknownOwnerName,
	}
	if m, ok := members[oppRoster.OwnerID]; ok {
		opp.Username = m.Username
		opp.DisplayName = m.DisplayName
	}
	return opp
}

func resolveState(ctx context.Context, provider SleeperProvider) (nflstate.State, error) {
	state, ok := provider.GetNFLState(ctx)
	if !ok {
		return nflstate.State{}, ErrStateUnavailable
	}
	if state.Week <= 0 {
		return nflstate.State{}, fmt.Errorf("%w: unable to determine current week", ErrStateUnavailable)
	}
	return state, nil
}

func resolveUser(ctx context.Context, provider SleeperProvider, username string) (user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return user.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	u, ok := provider.GetUserByUsername(ctx, username)
	if !ok {
		return user.User{}, fmt.Errorf("%w: '%s'", ErrUserNotFound, username)
	}
	return u, nil
}
