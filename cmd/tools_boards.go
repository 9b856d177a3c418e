package cmd

// Board, column and category tools.

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

func registerBoardTools(server *mcp.Server, client *kanboard.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getBoard",
		Description: "Get the board (swimlanes, columns and tasks) for a project.",
	}, forward(client, "getBoard", false, func(p types.ProjectIDParams) any {
		return []any{p.ProjectID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getColumns",
		Description: "Get all columns for a project.",
	}, forward(client, "getColumns", true, func(p types.ProjectIDParams) any {
		return []any{p.ProjectID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getColumn",
		Description: "Get a specific column by ID.",
	}, forward(client, "getColumn", false, func(p types.ColumnIDParams) any {
		return []any{p.ColumnID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getCategory",
		Description: "Get a specific category by ID.",
	}, forward(client, "getCategory", false, func(p types.CategoryIDParams) any {
		return []any{p.CategoryID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getAllCategories",
		Description: "Get all categories for a project.",
	}, forward(client, "getAllCategories", true, func(p types.ProjectIDParams) any {
		return []any{p.ProjectID}
	}))
}
