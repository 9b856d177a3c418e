package cmd

// Tag tools.

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

func registerTagTools(server *mcp.Server, client *kanboard.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getAllTags",
		Description: "Get all available tags.",
	}, forward(client, "getAllTags", true, func(types.NoParams) any {
		return nil
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getTagsByProject",
		Description: "Get all tags for a specific project.",
	}, forward(client, "getTagsByProject", true, func(p types.ProjectIDParams) any {
		return []any{p.ProjectID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "setTaskTags",
		Description: "Replace the set of tags assigned to a task.",
	}, forward(client, "setTaskTags", false, func(p types.SetTaskTagsParams) any {
		return []any{p.TaskID, p.Tags}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getTaskTags",
		Description: "Get the tags assigned to a task.",
	}, forward(client, "getTaskTags", true, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	}))
}
