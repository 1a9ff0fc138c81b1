package mcpapi

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fantasyops/sleeper-mcp/internal/domain/league"
	"github.com/fantasyops/sleeper-mcp/internal/domain/lineup"
	"github.com/fantasyops/sleeper-mcp/internal/usecase"
)

type usernameArgs struct {
	Username string `json:"username" jsonschema:"Sleeper username (required)" validate:"required"`
}

type userLeaguesArgs struct {
	Username string `json:"username" jsonschema:"Sleeper username (required)" validate:"required"`
	Season   string `json:"season,omitempty" jsonschema:"Season year (default 2024)"`
}

type userLineupArgs struct {
	Username string `json:"username" jsonschema:"Sleeper username (required)" validate:"required"`
	LeagueID string `json:"league_id" jsonschema:"Sleeper league id (required)" validate:"required"`
}

type emptyArgs struct{}

type statePayload struct {
	Season      string `json:"season"`
	Week        int    `json:"week"`
	SeasonType  string `json:"season_type"`
	DisplayWeek int    `json:"display_week"`
	Leg         int    `json:"leg"`
}

type userPayload struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

type leaguePayload struct {
	LeagueID string          `json:"league_id"`
	Name     string          `json:"name"`
	Season   string          `json:"season"`
	Status   string          `json:"status"`
	Settings league.Settings `json:"settings"`
}

type leagueOutcomePayload struct {
	LeagueID   string       `json:"league_id"`
	LeagueName string       `json:"league_name"`
	Lineup     *lineup.View `json:"lineup,omitempty"`
	Error      string       `json:"error,omitempty"`
}

type weeklyLineupPayload struct {
	User    lineup.Owner           `json:"user"`
	Week    int                    `json:"week"`
	Season  string                 `json:"season"`
	Leagues []leagueOutcomePayload `json:"leagues"`
}

func (s *Server) registerTools() {
	addTool(s, &mcp.Tool{
		Name:        "get_nfl_state",
		Description: "Get current NFL season state including current week",
	}, s.handleGetNFLState)

	addTool(s, &mcp.Tool{
		Name:        "get_user_info",
		Description: "Get user information by Sleeper username",
	}, s.handleGetUserInfo)

	addTool(s, &mcp.Tool{
		Name:        "get_user_leagues",
		Description: "Get all leagues for a user in a season",
	}, s.handleGetUserLeagues)

	addTool(s, &mcp.Tool{
		Name:        "get_user_lineup",
		Description: "Get a user's lineup for the current week in a specific league",
	}, s.handleGetUserLineup)

	addTool(s, &mcp.Tool{
		Name:        "get_user_weekly_lineup",
		Description: "Get a user's current week lineup across all their leagues",
	}, s.handleGetUserWeeklyLineup)

	addTool(s, &mcp.Tool{
		Name:        "get_server_info",
		Description: "Get information about the MCP server including name, version, and environment",
	}, s.handleGetServerInfo)

	addTool(s, &mcp.Tool{
		Name:        "health_check",
		Description: "Health check for monitoring server status",
	}, s.handleHealthCheck)
}

func (s *Server) handleGetNFLState(ctx context.Context, _ *mcp.CallToolRequest, _ emptyArgs) (*mcp.CallToolResult, any, error) {
	ctx, span := startSpan(ctx, "mcpapi.Server.GetNFLState")
	defer span.End()

	state, err := s.states.CurrentState(ctx)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	return toolJSON(statePayload{
		Season:      state.Season,
		Week:        state.Week,
		SeasonType:  state.SeasonType,
		DisplayWeek: state.DisplayWeek,
		Leg:         state.Leg,
	}), nil, nil
}

func (s *Server) handleGetUserInfo(ctx context.Context, _ *mcp.CallToolRequest, args usernameArgs) (*mcp.CallToolResult, any, error) {
	ctx, span := startSpan(ctx, "mcpapi.Server.GetUserInfo")
	defer span.End()

	if err := s.validateArgs(ctx, args); err != nil {
		return toolError(err.Error()), nil, nil
	}
	u, err := s.users.Info(ctx, args.Username)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	return toolJSON(userPayload{
		UserID:      u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
	}), nil, nil
}

func (s *Server) handleGetUserLeagues(ctx context.Context, _ *mcp.CallToolRequest, args userLeaguesArgs) (*mcp.CallToolResult, any, error) {
	ctx, span := startSpan(ctx, "mcpapi.Server.GetUserLeagues")
	defer span.End()

	if err := s.validateArgs(ctx, args); err != nil {
		return toolError(err.Error()), nil, nil
	}
	leagues, err := s.users.Leagues(ctx, args.Username, args.Season)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	out := make([]leaguePayload, 0, len(leagues))
	for _, lg := range leagues {
		out = append(out, leaguePayload{
			LeagueID: lg.ID,
			Name:     lg.Name,
			Season:   lg.Season,
			Status:   lg.Status,
			Settings: lg.Settings,
		})
	}
	return toolJSON(out), nil, nil
}

func (s *Server) handleGetUserLineup(ctx context.Context, _ *mcp.CallToolRequest, args userLineupArgs) (*mcp.CallToolResult, any, error) {
	ctx, span := startSpan(ctx, "mcpapi.Server.GetUserLineup")
	defer span.End()

	if err := s.validateArgs(ctx, args); err != nil {
		return toolError(err.Error()), nil, nil
	}
	view, err := s.lineups.Assemble(ctx, args.Username, args.LeagueID)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}
	return toolJSON(view), nil, nil
}

func (s *Server) handleGetUserWeeklyLineup(ctx context.Context, _ *mcp.CallToolRequest, args usernameArgs) (*mcp.CallToolResult, any, error) {
	ctx, span := startSpan(ctx, "mcpapi.Server.GetUserWeeklyLineup")
	defer span.End()

	if err := s.validateArgs(ctx, args); err != nil {
		return toolError(err.Error()), nil, nil
	}
	weekly, err := s.weekly.AssembleAll(ctx, args.Username)
	if err != nil {
		return toolError(err.Error()), nil, nil
	}

	out := weeklyLineupPayload{
		User:    weekly.User,
		Week:    weekly.Week,
		Season:  weekly.Season,
		Leagues: make([]leagueOutcomePayload, 0, len(weekly.Leagues)),
	}
	for _, outcome := range weekly.Leagues {
		entry := leagueOutcomePayload{
			LeagueID:   outcome.LeagueID,
			LeagueName: outcome.LeagueName,
		}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		} else {
			entry.Lineup = outcome.View
		}
		out.Leagues = append(out.Leagues, entry)
	}
	return toolJSON(out), nil, nil
}

func (s *Server) handleGetServerInfo(ctx context.Context, _ *mcp.CallToolRequest, _ emptyArgs) (*mcp.CallToolResult, any, error) {
	_, span := startSpan(ctx, "mcpapi.Server.GetServerInfo")
	defer span.End()

	return toolJSON(map[string]any{
		"server_name": s.cfg.ServiceName,
		"version":     s.cfg.ServiceVersion,
		"environment": s.cfg.Environment,
		"go_version":  runtime.Version(),
		"description": "MCP server for the Sleeper fantasy football API",
	}), nil, nil
}

func (s *Server) handleHealthCheck(ctx context.Context, _ *mcp.CallToolRequest, _ emptyArgs) (*mcp.CallToolResult, any, error) {
	_, span := startSpan(ctx, "mcpapi.Server.HealthCheck")
	defer span.End()

	return toolJSON(map[string]any{
		"status":         "healthy",
		"server":         s.cfg.ServiceName,
		"version":        s.cfg.ServiceVersion,
		"timestamp":      time.Now().Format(time.RFC3339),
		"uptime_seconds": int64(time.Since(s.started).Seconds()),
		"endpoints": map[string]string{
			"mcp":    mcpPath,
			"health": "/health",
			"tools":  "/tools",
		},
	}), nil, nil
}

func (s *Server) validateArgs(ctx context.Context, args any) error {
	if err := s.validate.StructCtx(ctx, args); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
