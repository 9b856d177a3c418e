package cmd

// Comment tools.

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

func registerCommentTools(server *mcp.Server, client *kanboard.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "createComment",
		Description: "Create a new comment on a task.",
	}, forward(client, "createComment", false, func(p types.CreateCommentParams) any {
		args := map[string]any{
			"task_id": p.TaskID,
			"content": p.Content,
		}
		setInt(args, "user_id", p.UserID)
		return args
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getComment",
		Description: "Get a specific comment by ID.",
	}, forward(client, "getComment", false, func(p types.CommentIDParams) any {
		return []any{p.CommentID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getAllComments",
		Description: "Get all comments for a task.",
	}, forward(client, "getAllComments", true, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "updateComment",
		Description: "Update the content of an existing comment.",
	}, forward(client, "updateComment", false, func(p types.UpdateCommentParams) any {
		return []any{p.CommentID, p.Content}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "removeComment",
		Description: "Remove (delete) a comment.",
	}, forward(client, "removeComment", false, func(p types.CommentIDParams) any {
		return []any{p.CommentID}
	}))
}
