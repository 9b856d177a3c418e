package cmd

// Shared plumbing for the MCP tools. Every tool is a thin adapter: map typed
// arguments onto one Kanboard API call, then wrap the outcome in the uniform
// envelope. All retry and error-classification logic lives in the client;
// handlers never retry and only translate the client's error family. Any
// other error escapes as a protocol-level failure instead of being disguised
// as a tool result.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/viper"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

// forward builds a handler that issues one API call. build maps the typed
// tool arguments onto the wire parameters (positional []any or named
// map[string]any, forwarded as-is). list tools additionally report a count.
func forward[P any](client *kanboard.Client, method string, list bool, build func(P) any) mcp.ToolHandlerFor[P, types.ToolEnvelope] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[P]) (*mcp.CallToolResultFor[types.ToolEnvelope], error) {
		logToolCall(method, params.Arguments)

		data, err := client.Call(ctx, method, build(params.Arguments))
		if err != nil {
			var kerr *kanboard.Error
			if !errors.As(err, &kerr) {
				return nil, err
			}
			logError(method, kerr)
			return envelopeResult(types.Failure(kerr))
		}
		if list {
			return envelopeResult(types.SuccessWithCount(data))
		}
		return envelopeResult(types.Success(data))
	}
}

// envelopeResult renders the envelope both as structured content and as JSON
// text, so clients without structured-content support still see the result.
func envelopeResult(env types.ToolEnvelope) (*mcp.CallToolResultFor[types.ToolEnvelope], error) {
	text, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode tool envelope: %w", err)
	}
	return &mcp.CallToolResultFor[types.ToolEnvelope]{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(text)}},
		StructuredContent: env,
		IsError:           !env.Success,
	}, nil
}

func logToolCall(method string, args any) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "[DEBUG] tool call %s args=%+v\n", method, args)
	}
}

func logError(method string, err error) {
	fmt.Fprintf(os.Stderr, "Error in %s: %v\n", method, err)
}

// Named-parameter builders. Kanboard ignores absent keys, so optional fields
// are only added when set.

func setInt(m map[string]any, key string, v *int) {
	if v != nil {
		m[key] = *v
	}
}

func setString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}
