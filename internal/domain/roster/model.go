package roster

// Roster is one team's owned players within a league. ID is unique only
// within its league. Starters order is lineup slot order and must be
// preserved end to end.
type Roster struct {
	ID       int
	OwnerID  string
	Starters []string
	Reserve  []string
	Taxi     []string
}

// Bench returns reserve followed by taxi, order preserved within each.
func (r Roster) Bench() []string {
	out := make([]string, 0, len(r.Reserve)+len(r.Taxi))
	out = append(out, r.Reserve...)
	out = append(out, r.Taxi...)
	return out
}

// FindByOwner returns the first roster owned by userID in the returned
// order. Duplicated owner ids are upstream corruption; first wins.
func FindByOwner(rosters []Roster, userID string) (Roster, bool) {
	for _, r := range rosters {
		if r.OwnerID == userID {
			return r, true
		}
	}
	return Roster{}, false
}

// FindByID returns the roster with the given league-local id.
func FindByID(rosters []Roster, rosterID int) (Roster, bool) {
	for _, r := range rosters {
		if r.ID == rosterID {
			return r, true
		}
	}
	return Roster{}, false
}
