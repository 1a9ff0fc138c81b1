package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/fantasyops/sleeper-mcp/internal/domain/lineup"
	"github.com/fantasyops/sleeper-mcp/internal/platform/logging"
)

const defaultMaxWorkers = 4

// LeagueOutcome is one league's result in an aggregate: either a
// lineup view or that league's specific error, never both.
type LeagueOutcome struct {
	LeagueID   string
	LeagueName string
	View       *lineup.View
	Err        error
}

// WeeklyLineup is the aggregate of one user's current-week lineups
// across every league they play in. Leagues keeps the order the league
// list came back in.
type WeeklyLineup struct {
	User    lineup.Owner
	Week    int
	Season  string
	Leagues []LeagueOutcome
}

// WeeklyLineupService fans one user's lineup assembly out across all
// their leagues, collecting per-league success or failure
// independently. One mis-synced league never costs the caller the
// other leagues' results.
type WeeklyLineupService struct {
	provider   SleeperProvider
	lineups    *LineupService
	maxWorkers int
	logger     *logging.Logger
}

func NewWeeklyLineupService(provider SleeperProvider, lineups *LineupService, maxWorkers int, logger *logging.Logger) *WeeklyLineupService {
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &WeeklyLineupService{
		provider:   provider,
		lineups:    lineups,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

// AssembleAll builds the current-week lineup for every league the user
// belongs to this season. State, identity, and the player catalog are
// resolved once and shared; per-league assemblies run on a bounded
// worker pool and land back in league-list order.
func (s *WeeklyLineupService) AssembleAll(ctx context.Context, username string) (WeeklyLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeeklyLineupService.AssembleAll")
	defer span.End()

	state, err := resolveState(ctx, s.provider)
	if err != nil {
		return WeeklyLineup{}, err
	}
	u, err := resolveUser(ctx, s.provider, username)
	if err != nil {
		return WeeklyLineup{}, err
	}

	season := strings.TrimSpace(state.Season)
	if season == "" {
		season = DefaultSeason
	}
	leagues := s.provider.GetUserLeagues(ctx, u.ID, season)
	if len(leagues) == 0 {
		return WeeklyLineup{}, fmt.Errorf("%w: user '%s' season %s", ErrNoLeagues, u.Username, season)
	}

	// One bulk catalog fetch serves every league in the batch.
	ac := AssembleContext{State: state, User: u, Catalog: s.provider.GetPlayers(ctx)}

	outcomes := make([]LeagueOutcome, len(leagues))

	workerCount := s.maxWorkers
	if workerCount > len(leagues) {
		workerCount = len(leagues)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WeeklyLineup{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, lg := range leagues {
		i, lg := i, lg
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			outcome := LeagueOutcome{LeagueID: lg.ID, LeagueName: lg.Name}
			view, err := s.lineups.AssembleWith(ctx, ac, lg.ID)
			if err != nil {
				outcome.Err = err
				s.logger.WarnContext(ctx, "league assembly failed",
					"league_id", lg.ID,
					"week", state.Week,
					"error", err,
				)
			} else {
				outcome.View = &view
			}
			outcomes[i] = outcome
		}); err != nil {
			workers.Done()
			return WeeklyLineup{}, fmt.Errorf("submit league to worker pool: %w", err)
		}
	}
	workers.Wait()

	displayName := u.DisplayName
	if displayName == "" {
		displayName = u.Username
	}

	return WeeklyLineup{
		User:    lineup.Owner{Username: u.Username, DisplayName: displayName},
		Week:    state.Week,
		Season:  season,
		Leagues: outcomes,
	}, nil
}
