package matchup

// Matchup is one roster's entry in a weekly pairing. Two entries sharing
// a MatchupID in the same week face each other.
type Matchup struct {
	RosterID  int
	MatchupID int
}

// FindByRoster returns the entry for rosterID, if any. Upstream returns
// exactly one entry per roster per week.
func FindByRoster(entries []Matchup, rosterID int) (Matchup, bool) {
	for _, m := range entries {
		if m.RosterID == rosterID {
			return m, true
		}
	}
	return Matchup{}, false
}

// OpponentRosterID resolves the roster facing rosterID this week by
// grouping entries on MatchupID and picking the other member of the
// pair. A grouping with no partner (bye week, odd roster count) returns
// false rather than an error.
func OpponentRosterID(entries []Matchup, rosterID int) (int, bool) {
	mine, ok := FindByRoster(entries, rosterID)
	if !ok {
		return 0, false
	}
	for _, m := range entries {
		if m.MatchupID == mine.MatchupID && m.RosterID != rosterID {
			return m.RosterID, true
		}
	}
	return 0, false
}
