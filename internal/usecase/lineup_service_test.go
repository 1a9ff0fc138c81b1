package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fantasyops/sleeper-mcp/internal/domain/matchup"
	"github.com/fantasyops/sleeper-mcp/internal/domain/roster"
)

func TestLineupService_Assemble_ResolvesOpponentAndKeepsStarterOrder(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	provider.seedAlice()
	provider.seedLeague("L1")

	svc := NewLineupService(provider, nil)
	view, err := svc.Assemble(context.Background(), "alice", "L1")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if view.Week != 5 || view.Season != "2024" {
		t.Fatalf("unexpected anchor: week=%d season=%s", view.Week, view.Season)
	}
	if view.RosterID != 1 {
		t.Fatalf("unexpected roster id: got=%d want=1", view.RosterID)
	}
	if len(view.Starters) != 2 || view.Starters[0].PlayerID != "P1" || view.Starters[1].PlayerID != "P2" {
		t.Fatalf("starters not in roster order: %+v", view.Starters)
	}
	if view.Opponent == nil {
		t.Fatal("expected a resolved opponent")
	}
	if view.Opponent.RosterID != 2 || view.Opponent.Username != "bob" {
		t.Fatalf("unexpected opponent: %+v", view.Opponent)
	}
}

func TestLineupService_Assemble_BenchIsReserveThenTaxi(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	provider.seedAlice()
	provider.seedLeague("L1")

	svc := NewLineupService(provider, nil)
	view, err := svc.Assemble(context.Background(), "alice", "L1")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if len(view.Bench) != 2 || view.Bench[0].PlayerID != "P3" || view.Bench[1].PlayerID != "P4" {
		t.Fatalf("bench must be reserve then taxi: %+v", view.Bench)
	}
}

func TestLineupService_Assemble_DropsStartersMissingFromCatalog(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	provider.seedAlice()
	provider.seedLeague("L1")
	delete(provider.catalog, "P2")

	svc := NewLineupService(provider, nil)
	view, err := svc.Assemble(context.Background(), "alice", "L1")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if len(view.Starters) != 1 || view.Starters[0].PlayerID != "P1" {
		t.Fatalf("expected stale starter dropped silently: %+v", view.Starters)
	}
}

func TestLineupService_Assemble_ByeWeekHasNilOpponent(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	provider.seedAlice()
	provider.seedLeague("L1")
	provider.matchupsByLeague["L1"] = []matchup.Matchup{{RosterID: 1, MatchupID: 9}}

	svc := NewLineupService(provider, nil)
	view, err := svc.Assemble(context.Background(), "alice", "L1")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if view.Opponent != nil {
		t.Fatalf("expected nil opponent on a bye week, got %+v", view.Opponent)
	}
}

func TestLineupService_Assemble_OpponentUnknownWhenMembershipMissing(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	provider.seedAlice()
	provider.seedLeague("L1")
	provider.membersByLeague["L1"] = provider.membersByLeague["L1"][:1]

	svc := NewLineupService(provider, nil)
	view, err := svc.Assemble(context.Background(), "alice", "L1")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if view.Opponent == nil || view.Opponent.Username != "Unknown" {
		t.Fatalf("expected Unknown opponent names, got %+v", view.Opponent)
	}
}

func TestLineupService_Assemble_UserNotInLeague(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	provider.seedAlice()
	provider.seedLeague("L1")
	provider.rostersByLeague["L1"] = []roster.Roster{{ID: 2, OwnerID: "U2"}}

	svc := NewLineupService(provider, nil)
	_, err := svc.Assemble(context.Background(), "alice", "L1")
	if !errors.Is(err, ErrUserNotInLeague) {
		t.Fatalf("expected ErrUserNotInLeague, got %v", err)
	}
}

func TestLineupService_Assemble_StepErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		setup func(*fakeProvider)
		want  error
	}{
		{
			name:  "state unavailable",
			setup: func(f *fakeProvider) { f.stateOK = false },
			want:  ErrStateUnavailable,
		},
		{
			name:  "week undetermined",
			setup: func(f *fakeProvider) { f.state.Week = 0 },
			want:  ErrStateUnavailable,
		},
		{
			name:  "unknown user",
			setup: func(f *fakeProvider) { delete(f.users, "alice") },
			want:  ErrUserNotFound,
		},
		{
			name:  "rosters unavailable",
			setup: func(f *fakeProvider) { delete(f.rostersByLeague, "L1") },
			want:  ErrLeagueUnavailable,
		},
		{
			name:  "matchups unavailable",
			setup: func(f *fakeProvider) { delete(f.matchupsByLeague, "L1") },
			want:  ErrMatchupsUnavailable,
		},
		{
			name: "no matchup for roster",
			setup: func(f *fakeProvider) {
				f.matchupsByLeague["L1"] = []matchup.Matchup{{RosterID: 2, MatchupID: 9}}
			},
			want: ErrNoMatchupForWeek,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := newFakeProvider()
			provider.seedAlice()
			provider.seedLeague("L1")
			tc.setup(provider)

			svc := NewLineupService(provider, nil)
			_, err := svc.Assemble(context.Background(), "alice", "L1")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLineupService_Assemble_ErrorMentionsUsername(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	svc := NewLineupService(provider, nil)

	_, err := svc.Assemble(context.Background(), "ghost", "L1")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "ghost") {
		t.Fatalf("error should name the username, got %q", got)
	}
}
