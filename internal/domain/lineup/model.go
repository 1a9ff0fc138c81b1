package lineup

import "github.com/fantasyops/sleeper-mcp/internal/domain/player"

// Owner identifies the lineup's owner in output payloads.
type Owner struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// Opponent is the resolved other side of the week's matchup. Nil in a
// View means no pair was found (bye week), not a failure.
type Opponent struct {
	RosterID    int    `json:"roster_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// Slot is one enriched player in a lineup.
type Slot struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
}

// View is the join of roster, matchup, league membership, and player
// catalog for one user in one league in one week. It is derived per
// request and never persisted.
type View struct {
	User     Owner     `json:"user"`
	Week     int       `json:"week"`
	Season   string    `json:"season"`
	RosterID int       `json:"roster_id"`
	Starters []Slot    `json:"starters"`
	Bench    []Slot    `json:"bench"`
	Opponent *Opponent `json:"opponent"`
}

// Slots converts enriched players into output slots, keeping order.
func Slots(players []player.Player) []Slot {
	out := make([]Slot, 0, len(players))
	for _, p := range players {
		out = append(out, Slot{
			PlayerID: p.ID,
			Name:     p.Name,
			Position: p.Position,
			Team:     p.Team,
		})
	}
	return out
}
