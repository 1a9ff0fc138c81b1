package usecase

import (
	"context"
	"strings"

	"github.com/fantasyops/sleeper-mcp/internal/domain/league"
	"github.com/fantasyops/sleeper-mcp/internal/domain/user"
)

// DefaultSeason is used when a caller asks for leagues without naming a
// season and the current state cannot supply one.
const DefaultSeason = "2024"

// UserService resolves usernames to identities and enumerates leagues.
type UserService struct {
	provider SleeperProvider
}

func NewUserService(provider SleeperProvider) *UserService {
	return &UserService{provider: provider}
}

// Info resolves a username to its account record.
func (s *UserService) Info(ctx context.Context, username string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Info")
	defer span.End()

	return resolveUser(ctx, s.provider, username)
}

// Leagues lists the user's leagues for a season. An empty season falls
// back to DefaultSeason.
func (s *UserService) Leagues(ctx context.Context, username, season string) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Leagues")
	defer span.End()

	u, err := s.Info(ctx, username)
	if err != nil {
		return nil, err
	}

	season = strings.TrimSpace(season)
	if season == "" {
		season = DefaultSeason
	}

	return s.provider.GetUserLeagues(ctx, u.ID, season), nil
}
