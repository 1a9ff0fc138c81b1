package mcpapi

import (
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valyala/bytebufferpool"
)

type errorPayload struct {
	Error string `json:"error"`
}

// toolJSON encodes the payload as JSON text content. Encoding runs
// through a pooled buffer since lineup aggregates can be large.
func toolJSON(payload any) *mcp.CallToolResult {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return toolError("unable to encode result")
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: strings.TrimRight(buf.String(), "\n")},
		},
	}
}

// toolError returns a structured {"error": msg} result flagged as an
// error so MCP clients can branch on it.
func toolError(msg string) *mcp.CallToolResult {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(errorPayload{Error: msg}); err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		}
	}

	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: strings.TrimRight(buf.String(), "\n")},
		},
	}
}
