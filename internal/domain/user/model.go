package user

// User is a Sleeper account resolved from a username.
type User struct {
	ID          string
	Username    string
	DisplayName string
	Avatar      string
}

// LeagueUser is a league membership record, used to attach display
// names to rosters.
type LeagueUser struct {
	ID          string
	Username    string
	DisplayName string
}

// IndexByID builds a lookup of league members keyed by user id.
func IndexByID(members []LeagueUser) map[string]LeagueUser {
	out := make(map[string]LeagueUser, len(members))
	for _, m := range members {
		out[m.ID] = m
	}
	return out
}
