package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// Top-level preconditions: without a current week and an identity
	// there is nothing to aggregate.
	ErrStateUnavailable = errors.New("unable to fetch current NFL state")
	ErrUserNotFound     = errors.New("user not found")
	ErrNoLeagues        = errors.New("no leagues found")

	// Per-league assembly failures. Each is a distinct kind so the
	// dispatch layer can surface a specific message per league.
	ErrLeagueUnavailable   = errors.New("unable to fetch league rosters")
	ErrUserNotInLeague     = errors.New("user has no roster in league")
	ErrMatchupsUnavailable = errors.New("unable to fetch matchups")
	ErrNoMatchupForWeek    = errors.New("no matchup found for week")
)
