package mcpapi

import (
	"context"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fantasyops/sleeper-mcp/internal/platform/logging"
	"github.com/fantasyops/sleeper-mcp/internal/usecase"
)

const mcpPath = "/mcp"

// Config carries the service identity exposed through get_server_info
// and the CORS policy for the HTTP surface.
type Config struct {
	ServiceName        string
	ServiceVersion     string
	Environment        string
	CORSAllowedOrigins []string
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Server owns the MCP tool surface: registration, argument validation,
// dispatch into usecases, and the HTTP endpoints around the MCP
// handler.
type Server struct {
	cfg      Config
	logger   *logging.Logger
	validate *validator.Validate

	states  *usecase.StateService
	users   *usecase.UserService
	lineups *usecase.LineupService
	weekly  *usecase.WeeklyLineupService

	mcp      *mcp.Server
	registry []toolInfo
	started  time.Time
}

func NewServer(
	cfg Config,
	states *usecase.StateService,
	users *usecase.UserService,
	lineups *usecase.LineupService,
	weekly *usecase.WeeklyLineupService,
	logger *logging.Logger,
) *Server {
	if logger == nil {
		logger = logging.Default()
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
		states:   states,
		users:    users,
		lineups:  lineups,
		weekly:   weekly,
		started:  time.Now(),
	}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    cfg.ServiceName,
			Version: cfg.ServiceVersion,
		},
		nil,
	)
	s.registerTools()

	return s
}

// Handler returns the full HTTP surface: the streamable MCP endpoint
// plus /health and /tools, wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	mux := http.NewServeMux()
	mux.Handle(mcpPath, streamable)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/tools", s.handleTools)

	return RequestTracing(RequestLogging(s.logger, CORS(s.cfg.CORSAllowedOrigins, recoverPanic(s.logger, mux))))
}

// Tools lists the registered tools in registration order.
func (s *Server) Tools() []toolInfo {
	out := make([]toolInfo, len(s.registry))
	copy(out, s.registry)
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleTools(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	raw, err := sonic.Marshal(map[string]any{"tools": s.registry})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"unable to encode tool list"}`))
		return
	}
	w.Write(raw)
}

func addTool[T any](s *Server, tool *mcp.Tool, handler func(ctx context.Context, req *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error)) {
	s.registry = append(s.registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(s.mcp, tool, handler)
}
