package cmd

// Task tools: list, fetch, create, update, open/close, remove and search.

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

func registerTaskTools(server *mcp.Server, client *kanboard.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getAllTasks",
		Description: "Get all tasks for a project, optionally filtered by status.",
	}, forward(client, "getAllTasks", true, func(p types.AllTasksParams) any {
		if p.StatusID != nil {
			return []any{p.ProjectID, *p.StatusID}
		}
		return []any{p.ProjectID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getTask",
		Description: "Get a specific task by ID.",
	}, forward(client, "getTask", false, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getTaskByReference",
		Description: "Get a specific task by its external reference.",
	}, forward(client, "getTaskByReference", false, func(p types.TaskByReferenceParams) any {
		return []any{p.ProjectID, p.Reference}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getOverdueTasks",
		Description: "Get all overdue tasks.",
	}, forward(client, "getOverdueTasks", true, func(types.NoParams) any {
		return nil
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getOverdueTasksByProject",
		Description: "Get overdue tasks for a specific project.",
	}, forward(client, "getOverdueTasksByProject", true, func(p types.ProjectIDParams) any {
		return []any{p.ProjectID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "createTask",
		Description: "Create a new task. Only project_id and title are required.",
	}, forward(client, "createTask", false, func(p types.CreateTaskParams) any {
		args := map[string]any{
			"project_id": p.ProjectID,
			"title":      p.Title,
		}
		setString(args, "description", p.Description)
		setInt(args, "category_id", p.CategoryID)
		setInt(args, "owner_id", p.OwnerID)
		setInt(args, "creator_id", p.CreatorID)
		setString(args, "date_due", p.DateDue)
		setString(args, "color_id", p.ColorID)
		setInt(args, "column_id", p.ColumnID)
		setInt(args, "swimlane_id", p.SwimlaneID)
		setInt(args, "priority", p.Priority)
		setString(args, "reference", p.Reference)
		if p.Tags != nil {
			args["tags"] = p.Tags
		}
		return args
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "updateTask",
		Description: "Update an existing task. Only provide the fields to change.",
	}, forward(client, "updateTask", false, func(p types.UpdateTaskParams) any {
		args := map[string]any{"id": p.TaskID}
		setString(args, "title", p.Title)
		setString(args, "description", p.Description)
		setInt(args, "category_id", p.CategoryID)
		setInt(args, "owner_id", p.OwnerID)
		setString(args, "date_due", p.DateDue)
		setString(args, "color_id", p.ColorID)
		setInt(args, "priority", p.Priority)
		setString(args, "reference", p.Reference)
		return args
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "openTask",
		Description: "Open a task (set its status to open).",
	}, forward(client, "openTask", false, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "closeTask",
		Description: "Close a task (set its status to closed).",
	}, forward(client, "closeTask", false, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "removeTask",
		Description: "Remove (delete) a task.",
	}, forward(client, "removeTask", false, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "searchTasks",
		Description: "Search tasks in a project with Kanboard's query syntax.",
	}, forward(client, "searchTasks", true, func(p types.SearchTasksParams) any {
		args := map[string]any{
			"project_id": p.ProjectID,
			"query":      p.Query,
		}
		setInt(args, "category_id", p.CategoryID)
		setInt(args, "owner_id", p.OwnerID)
		setString(args, "due_date", p.DueDate)
		setInt(args, "status_id", p.StatusID)
		return args
	}))
}
