package sleeper

import (
	"strings"

	"github.com/fantasyops/sleeper-mcp/internal/domain/league"
	"github.com/fantasyops/sleeper-mcp/internal/domain/nflstate"
	"github.com/fantasyops/sleeper-mcp/internal/domain/player"
	"github.com/fantasyops/sleeper-mcp/internal/domain/roster"
	"github.com/fantasyops/sleeper-mcp/internal/domain/user"
)

type stateDTO struct {
	Season      string `json:"season"`
	Week        int    `json:"week"`
	SeasonType  string `json:"season_type"`
	DisplayWeek int    `json:"display_week"`
	Leg         int    `json:"leg"`
}

func (d stateDTO) toState() nflstate.State {
	return nflstate.State{
		Season:      d.Season,
		Week:        d.Week,
		SeasonType:  d.SeasonType,
		DisplayWeek: d.DisplayWeek,
		Leg:         d.Leg,
	}
}

type userDTO struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

func (d userDTO) toUser() user.User {
	return user.User{
		ID:          d.UserID,
		Username:    d.Username,
		DisplayName: d.DisplayName,
		Avatar:      d.Avatar,
	}
}

type leagueUserDTO struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

func (d leagueUserDTO) toLeagueUser() user.LeagueUser {
	return user.LeagueUser{
		ID:          d.UserID,
		Username:    d.Username,
		DisplayName: d.DisplayName,
	}
}

type leagueDTO struct {
	LeagueID        string             `json:"league_id"`
	Name            string             `json:"name"`
	Season          string             `json:"season"`
	Status          string             `json:"status"`
	TotalRosters    int                `json:"total_rosters"`
	RosterPositions []string           `json:"roster_positions"`
	ScoringSettings map[string]float64 `json:"scoring_settings"`
}

func (d leagueDTO) toLeague() league.League {
	return league.League{
		ID:     d.LeagueID,
		Name:   d.Name,
		Season: d.Season,
		Status: d.Status,
		Settings: league.Settings{
			TotalRosters:    d.TotalRosters,
			RosterPositions: d.RosterPositions,
			ScoringSettings: d.ScoringSettings,
		},
	}
}

type rosterDTO struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Starters []string `json:"starters"`
	Reserve  []string `json:"reserve"`
	Taxi     []string `json:"taxi"`
}

func (d rosterDTO) toRoster() roster.Roster {
	return roster.Roster{
		ID:       d.RosterID,
		OwnerID:  d.OwnerID,
		Starters: d.Starters,
		Reserve:  d.Reserve,
		Taxi:     d.Taxi,
	}
}

type matchupDTO struct {
	RosterID  int `json:"roster_id"`
	MatchupID int `json:"matchup_id"`
}

type playerDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

// toPlayer projects one catalog entry. Team-defense rows carry no
// full_name, so the name falls back to first+last. Placeholder rows
// the upstream keeps for invalid ids are dropped.
func (d playerDTO) toPlayer(id string) (player.Player, bool) {
	name := d.FullName
	if name == "" {
		name = strings.TrimSpace(d.FirstName + " " + d.LastName)
	}
	if name == "" {
		return player.Player{}, false
	}
	if d.FirstName == "Player" && d.LastName == "Invalid" {
		return player.Player{}, false
	}
	return player.Player{
		ID:       id,
		Name:     name,
		Position: d.Position,
		Team:     d.Team,
	}, true
}
