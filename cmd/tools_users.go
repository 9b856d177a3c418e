package cmd

// User tools, including the "my ..." views of the authenticated user.

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

func registerUserTools(server *mcp.Server, client *kanboard.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getUser",
		Description: "Get a specific user by ID.",
	}, forward(client, "getUser", false, func(p types.UserIDParams) any {
		return []any{p.UserID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getUserByName",
		Description: "Get a specific user by username.",
	}, forward(client, "getUserByName", false, func(p types.UserByNameParams) any {
		return []any{p.Username}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getAllUsers",
		Description: "Get all users.",
	}, forward(client, "getAllUsers", true, func(types.NoParams) any {
		return nil
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getMe",
		Description: "Get information about the authenticated user.",
	}, forward(client, "getMe", false, func(types.NoParams) any {
		return nil
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getMyDashboard",
		Description: "Get the authenticated user's dashboard.",
	}, forward(client, "getMyDashboard", false, func(types.NoParams) any {
		return nil
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getMyActivityStream",
		Description: "Get the authenticated user's activity stream.",
	}, forward(client, "getMyActivityStream", true, func(types.NoParams) any {
		return nil
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getMyProjectsList",
		Description: "Get the authenticated user's projects list.",
	}, forward(client, "getMyProjectsList", true, func(types.NoParams) any {
		return nil
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getMyOverdueTasks",
		Description: "Get the authenticated user's overdue tasks.",
	}, forward(client, "getMyOverdueTasks", true, func(types.NoParams) any {
		return nil
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getMyProjects",
		Description: "Get the authenticated user's projects.",
	}, forward(client, "getMyProjects", true, func(types.NoParams) any {
		return nil
	}))
}
