package cmd

// File attachment tools.

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

func registerFileTools(server *mcp.Server, client *kanboard.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "createTaskFile",
		Description: "Attach a base64-encoded file to a task.",
	}, forward(client, "createTaskFile", false, func(p types.CreateTaskFileParams) any {
		return []any{p.TaskID, p.Filename, p.Blob}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getAllTaskFiles",
		Description: "Get all files attached to a task.",
	}, forward(client, "getAllTaskFiles", true, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getTaskFile",
		Description: "Get a specific task file by ID.",
	}, forward(client, "getTaskFile", false, func(p types.FileIDParams) any {
		return []any{p.FileID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "downloadTaskFile",
		Description: "Download a task file; the content is returned base64-encoded.",
	}, forward(client, "downloadTaskFile", false, func(p types.FileIDParams) any {
		return []any{p.FileID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "removeTaskFile",
		Description: "Remove (delete) a task file.",
	}, forward(client, "removeTaskFile", false, func(p types.FileIDParams) any {
		return []any{p.FileID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "removeAllTaskFiles",
		Description: "Remove all files attached to a task.",
	}, forward(client, "removeAllTaskFiles", false, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	}))
}
