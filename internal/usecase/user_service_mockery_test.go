package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fantasyops/sleeper-mcp/internal/domain/league"
	"github.com/fantasyops/sleeper-mcp/internal/domain/user"
	usecasemock "github.com/fantasyops/sleeper-mcp/internal/mocks/usecase"
)

func TestUserService_Leagues_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewSleeperProvider(t)
	service := NewUserService(provider)

	alice := user.User{ID: "U1", Username: "alice", DisplayName: "Alice"}
	expected := []league.League{
		{ID: "L1", Name: "Office League", Season: "2024", Status: "in_season"},
		{ID: "L2", Name: "Family League", Season: "2024", Status: "in_season"},
	}

	provider.
		On("GetUserByUsername", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "alice").
		Return(alice, true).
		Once()
	provider.
		On("GetUserLeagues", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "U1", "2024").
		Return(expected).
		Once()

	got, err := service.Leagues(ctx, "alice", "2024")
	if err != nil {
		t.Fatalf("leagues: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected league count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].ID != expected[0].ID {
		t.Fatalf("unexpected league id: got=%s want=%s", got[0].ID, expected[0].ID)
	}
}

func TestUserService_Leagues_SeasonDefaultsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewSleeperProvider(t)
	service := NewUserService(provider)

	alice := user.User{ID: "U1", Username: "alice"}
	provider.On("GetUserByUsername", mock.Anything, "alice").Return(alice, true).Once()
	provider.On("GetUserLeagues", mock.Anything, "U1", DefaultSeason).Return(nil).Once()

	if _, err := service.Leagues(ctx, "alice", ""); err != nil {
		t.Fatalf("leagues: %v", err)
	}
}

func TestUserService_Info_UnknownUserUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewSleeperProvider(t)
	service := NewUserService(provider)

	provider.On("GetUserByUsername", mock.Anything, "ghost").Return(user.User{}, false).Once()

	_, err := service.Info(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
