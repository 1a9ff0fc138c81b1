package usecase

import (
	"context"

	"github.com/fantasyops/sleeper-mcp/internal/domain/nflstate"
)

// StateService exposes the current NFL season state.
type StateService struct {
	provider SleeperProvider
}

func NewStateService(provider SleeperProvider) *StateService {
	return &StateService{provider: provider}
}

// CurrentState fetches the season/week anchor fresh from upstream. The
// state changes weekly and is never reused across top-level operations.
func (s *StateService) CurrentState(ctx context.Context) (nflstate.State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StateService.CurrentState")
	defer span.End()

	return resolveState(ctx, s.provider)
}
