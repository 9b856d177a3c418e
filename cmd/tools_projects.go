package cmd

// Project tools: thin adapters over the Kanboard project API.

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

func registerProjectTools(server *mcp.Server, client *kanboard.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getAllProjects",
		Description: "Get all projects from Kanboard.",
	}, forward(client, "getAllProjects", true, func(types.NoParams) any {
		return nil
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getProjectById",
		Description: "Get a specific project by ID.",
	}, forward(client, "getProjectById", false, func(p types.ProjectIDParams) any {
		return []any{p.ProjectID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getProjectByName",
		Description: "Get a specific project by name.",
	}, forward(client, "getProjectByName", false, func(p types.ProjectByNameParams) any {
		return []any{p.ProjectName}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getProjectActivity",
		Description: "Get activity for a specific project.",
	}, forward(client, "getProjectActivity", true, func(p types.ProjectIDParams) any {
		return []any{p.ProjectID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getProjectActivities",
		Description: "Get activities for a specific project.",
	}, forward(client, "getProjectActivities", true, func(p types.ProjectIDParams) any {
		return []any{p.ProjectID}
	}))
}
