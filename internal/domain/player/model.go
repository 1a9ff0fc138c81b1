package player

// Player is one entry in the bulk NFL player table.
type Player struct {
	ID       string
	Name     string
	Position string
	Team     string
}

// Catalog maps player id to metadata. It is the same table for every
// league and week, large (thousands of entries), and read-only once
// fetched, so it is safe to share across concurrent assemblies.
type Catalog map[string]Player

// emptySlot is the placeholder Sleeper puts in unfilled lineup slots.
const emptySlot = "0"

// Enrich projects ids through the catalog, preserving input order.
// Empty ids, placeholder slots, and ids missing from the catalog are
// dropped silently: the catalog lags real rosters and a stale entry is
// not a fatal condition.
func (c Catalog) Enrich(ids []string) []Player {
	out := make([]Player, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == emptySlot {
			continue
		}
		p, ok := c[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}
	return out
}
