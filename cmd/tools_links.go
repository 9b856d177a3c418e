package cmd

// Link tools: task links plus the link-type catalog.

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

func registerLinkTools(server *mcp.Server, client *kanboard.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "createTaskLink",
		Description: "Create a link between two tasks.",
	}, forward(client, "createTaskLink", false, func(p types.CreateTaskLinkParams) any {
		return []any{p.TaskID, p.OppositeTaskID, p.LinkID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "updateTaskLink",
		Description: "Update an existing task link.",
	}, forward(client, "updateTaskLink", false, func(p types.UpdateTaskLinkParams) any {
		return []any{p.TaskLinkID, p.TaskID, p.OppositeTaskID, p.LinkID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getTaskLinkById",
		Description: "Get a specific task link by ID.",
	}, forward(client, "getTaskLinkById", false, func(p types.TaskLinkIDParams) any {
		return []any{p.TaskLinkID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getAllTaskLinks",
		Description: "Get all links for a task.",
	}, forward(client, "getAllTaskLinks", true, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "removeTaskLink",
		Description: "Remove (delete) a task link.",
	}, forward(client, "removeTaskLink", false, func(p types.TaskLinkIDParams) any {
		return []any{p.TaskLinkID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getAllLinks",
		Description: "Get all available link types.",
	}, forward(client, "getAllLinks", true, func(types.NoParams) any {
		return nil
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getOppositeLinkId",
		Description: "Get the opposite link ID for a given link type.",
	}, forward(client, "getOppositeLinkId", false, func(p types.LinkIDParams) any {
		return []any{p.LinkID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getLinkByLabel",
		Description: "Get a link type by its label.",
	}, forward(client, "getLinkByLabel", false, func(p types.LinkByLabelParams) any {
		return []any{p.Label}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getLinkById",
		Description: "Get a link type by its ID.",
	}, forward(client, "getLinkById", false, func(p types.LinkIDParams) any {
		return []any{p.LinkID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "createLink",
		Description: "Create a new link type.",
	}, forward(client, "createLink", false, func(p types.CreateLinkParams) any {
		return []any{p.Label, p.OppositeLabel}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "updateLink",
		Description: "Update an existing link type.",
	}, forward(client, "updateLink", false, func(p types.UpdateLinkParams) any {
		return []any{p.LinkID, p.Label, p.OppositeLabel}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "removeLink",
		Description: "Remove (delete) a link type.",
	}, forward(client, "removeLink", false, func(p types.LinkIDParams) any {
		return []any{p.LinkID}
	}))
}
