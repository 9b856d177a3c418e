package cmd

// Subtask tools.

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

func registerSubtaskTools(server *mcp.Server, client *kanboard.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "createSubtask",
		Description: "Create a new subtask on a task.",
	}, forward(client, "createSubtask", false, func(p types.CreateSubtaskParams) any {
		args := map[string]any{
			"task_id": p.TaskID,
			"title":   p.Title,
		}
		setInt(args, "user_id", p.UserID)
		setInt(args, "time_estimated", p.TimeEstimated)
		setInt(args, "time_spent", p.TimeSpent)
		setInt(args, "status", p.Status)
		return args
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getSubtask",
		Description: "Get a specific subtask by ID.",
	}, forward(client, "getSubtask", false, func(p types.SubtaskIDParams) any {
		return []any{p.SubtaskID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getAllSubtasks",
		Description: "Get all subtasks for a task.",
	}, forward(client, "getAllSubtasks", true, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "updateSubtask",
		Description: "Update an existing subtask. Only provide the fields to change.",
	}, forward(client, "updateSubtask", false, func(p types.UpdateSubtaskParams) any {
		args := map[string]any{"id": p.SubtaskID}
		setString(args, "title", p.Title)
		setInt(args, "user_id", p.UserID)
		setInt(args, "time_estimated", p.TimeEstimated)
		setInt(args, "time_spent", p.TimeSpent)
		setInt(args, "status", p.Status)
		return args
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "removeSubtask",
		Description: "Remove (delete) a subtask.",
	}, forward(client, "removeSubtask", false, func(p types.SubtaskIDParams) any {
		return []any{p.SubtaskID}
	}))
}
