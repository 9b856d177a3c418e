package cmd

// Diagnostic tools: connectivity probe, server info and the active
// (non-secret) configuration.

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

func registerDiagnosticTools(server *mcp.Server, client *kanboard.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "testConnection",
		Description: "Test the connection to the Kanboard server and report reachability.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.NoParams]) (*mcp.CallToolResultFor[types.ToolEnvelope], error) {
		logToolCall("testConnection", nil)
		return envelopeResult(types.Success(client.TestConnection(ctx)))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getServerInfo",
		Description: "Get Kanboard server version and authenticated user information.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.NoParams]) (*mcp.CallToolResultFor[types.ToolEnvelope], error) {
		logToolCall("getServerInfo", nil)
		return envelopeResult(types.Success(client.GetServerInfo(ctx)))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getConfigInfo",
		Description: "Get the active server configuration without secrets.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.NoParams]) (*mcp.CallToolResultFor[types.ToolEnvelope], error) {
		logToolCall("getConfigInfo", nil)
		return envelopeResult(types.Success(configInfo(client.Config())))
	})
}

// configInfo reports the active settings. The API token is deliberately
// absent.
func configInfo(cfg kanboard.Config) map[string]any {
	user, _ := cfg.BasicAuth()
	authMode := "user"
	if cfg.ApplicationAuth() {
		authMode = "application"
	}
	return map[string]any{
		"server_name":    "kanboard-mcp",
		"server_version": version,
		"kanboard_url":   cfg.URL,
		"username":       user,
		"auth_mode":      authMode,
		"verify_ssl":     cfg.VerifySSL,
		"timeout":        cfg.Timeout,
		"max_retries":    cfg.MaxRetries,
		"retry_delay":    cfg.RetryDelay,
		"debug":          cfg.Debug,
	}
}
