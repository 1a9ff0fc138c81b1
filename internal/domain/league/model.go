package league

// Settings is the subset of league configuration exposed to callers.
type Settings struct {
	TotalRosters    int                `json:"total_rosters"`
	RosterPositions []string           `json:"roster_positions"`
	ScoringSettings map[string]float64 `json:"scoring_settings"`
}

// League is one fantasy league a user belongs to in a season.
type League struct {
	ID       string
	Name     string
	Season   string
	Status   string
	Settings Settings
}
