package nflstate

// State is the Sleeper notion of "now": the current season and week.
// It changes weekly, so callers must fetch it fresh per top-level
// operation and never hold it across requests.
type State struct {
	Season      string
	Week        int
	SeasonType  string
	DisplayWeek int
	Leg         int
}
