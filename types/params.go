package types

// MCP tool parameter types. Optional fields are pointers so that unset values
// are omitted from the forwarded API parameters instead of being sent as
// zeroes.

// NoParams is the argument type for tools that take no input.
type NoParams struct{}

// Project tools

type ProjectIDParams struct {
	ProjectID int `json:"project_id" mcp:"The ID of the project"`
}

type ProjectByNameParams struct {
	ProjectName string `json:"project_name" mcp:"The name of the project to retrieve"`
}

// Task tools

type AllTasksParams struct {
	ProjectID int  `json:"project_id" mcp:"The ID of the project to get tasks for"`
	StatusID  *int `json:"status_id,omitempty" mcp:"Optional status ID to filter tasks (1=open, 0=closed)"`
}

type TaskIDParams struct {
	TaskID int `json:"task_id" mcp:"The ID of the task"`
}

type TaskByReferenceParams struct {
	ProjectID int    `json:"project_id" mcp:"The ID of the project"`
	Reference string `json:"reference" mcp:"The reference of the task to retrieve"`
}

type CreateTaskParams struct {
	ProjectID   int      `json:"project_id" mcp:"The ID of the project"`
	Title       string   `json:"title" mcp:"The title of the task"`
	Description *string  `json:"description,omitempty" mcp:"The description of the task"`
	CategoryID  *int     `json:"category_id,omitempty" mcp:"The category ID"`
	OwnerID     *int     `json:"owner_id,omitempty" mcp:"The owner user ID"`
	CreatorID   *int     `json:"creator_id,omitempty" mcp:"The creator user ID"`
	DateDue     *string  `json:"date_due,omitempty" mcp:"The due date (YYYY-MM-DD format)"`
	ColorID     *string  `json:"color_id,omitempty" mcp:"The color ID"`
	ColumnID    *int     `json:"column_id,omitempty" mcp:"The column ID"`
	SwimlaneID  *int     `json:"swimlane_id,omitempty" mcp:"The swimlane ID"`
	Priority    *int     `json:"priority,omitempty" mcp:"The priority (0-3)"`
	Reference   *string  `json:"reference,omitempty" mcp:"The task reference"`
	Tags        []string `json:"tags,omitempty" mcp:"List of tags"`
}

type UpdateTaskParams struct {
	TaskID      int     `json:"task_id" mcp:"The ID of the task to update"`
	Title       *string `json:"title,omitempty" mcp:"The new title of the task"`
	Description *string `json:"description,omitempty" mcp:"The new description of the task"`
	CategoryID  *int    `json:"category_id,omitempty" mcp:"The new category ID"`
	OwnerID     *int    `json:"owner_id,omitempty" mcp:"The new owner user ID"`
	DateDue     *string `json:"date_due,omitempty" mcp:"The new due date (YYYY-MM-DD format)"`
	ColorID     *string `json:"color_id,omitempty" mcp:"The new color ID"`
	Priority    *int    `json:"priority,omitempty" mcp:"The new priority (0-3)"`
	Reference   *string `json:"reference,omitempty" mcp:"The new task reference"`
}

type SearchTasksParams struct {
	ProjectID  int     `json:"project_id" mcp:"The ID of the project to search in"`
	Query      string  `json:"query" mcp:"The search query"`
	CategoryID *int    `json:"category_id,omitempty" mcp:"Optional category ID to filter"`
	OwnerID    *int    `json:"owner_id,omitempty" mcp:"Optional owner user ID to filter"`
	DueDate    *string `json:"due_date,omitempty" mcp:"Optional due date to filter (YYYY-MM-DD format)"`
	StatusID   *int    `json:"status_id,omitempty" mcp:"Optional status ID to filter"`
}

// Board, column and category tools

type ColumnIDParams struct {
	ColumnID int `json:"column_id" mcp:"The ID of the column to retrieve"`
}

type CategoryIDParams struct {
	CategoryID int `json:"category_id" mcp:"The ID of the category to retrieve"`
}

// Comment tools

type CreateCommentParams struct {
	TaskID  int    `json:"task_id" mcp:"The ID of the task to comment on"`
	Content string `json:"content" mcp:"The content of the comment"`
	UserID  *int   `json:"user_id,omitempty" mcp:"The ID of the user creating the comment"`
}

type CommentIDParams struct {
	CommentID int `json:"comment_id" mcp:"The ID of the comment"`
}

type UpdateCommentParams struct {
	CommentID int    `json:"comment_id" mcp:"The ID of the comment to update"`
	Content   string `json:"content" mcp:"The new content of the comment"`
}

// User tools

type UserIDParams struct {
	UserID int `json:"user_id" mcp:"The ID of the user to retrieve"`
}

type UserByNameParams struct {
	Username string `json:"username" mcp:"The username of the user to retrieve"`
}

// Link tools

type CreateTaskLinkParams struct {
	TaskID         int `json:"task_id" mcp:"The ID of the first task"`
	OppositeTaskID int `json:"opposite_task_id" mcp:"The ID of the second task to link to"`
	LinkID         int `json:"link_id" mcp:"The ID of the link type"`
}

type UpdateTaskLinkParams struct {
	TaskLinkID     int `json:"task_link_id" mcp:"The ID of the task link to update"`
	TaskID         int `json:"task_id" mcp:"The ID of the first task"`
	OppositeTaskID int `json:"opposite_task_id" mcp:"The ID of the second task to link to"`
	LinkID         int `json:"link_id" mcp:"The ID of the link type"`
}

type TaskLinkIDParams struct {
	TaskLinkID int `json:"task_link_id" mcp:"The ID of the task link"`
}

type LinkIDParams struct {
	LinkID int `json:"link_id" mcp:"The ID of the link type"`
}

type LinkByLabelParams struct {
	Label string `json:"label" mcp:"The label of the link to retrieve"`
}

type CreateLinkParams struct {
	Label         string `json:"label" mcp:"The label of the link"`
	OppositeLabel string `json:"opposite_label" mcp:"The label of the opposite link"`
}

type UpdateLinkParams struct {
	LinkID        int    `json:"link_id" mcp:"The ID of the link to update"`
	Label         string `json:"label" mcp:"The new label of the link"`
	OppositeLabel string `json:"opposite_label" mcp:"The new label of the opposite link"`
}

// Subtask tools

type CreateSubtaskParams struct {
	TaskID        int    `json:"task_id" mcp:"The ID of the parent task"`
	Title         string `json:"title" mcp:"The title of the subtask"`
	UserID        *int   `json:"user_id,omitempty" mcp:"The ID of the user assigned to the subtask"`
	TimeEstimated *int   `json:"time_estimated,omitempty" mcp:"Estimated time in hours"`
	TimeSpent     *int   `json:"time_spent,omitempty" mcp:"Time spent in hours"`
	Status        *int   `json:"status,omitempty" mcp:"Status of the subtask (0=todo, 1=in progress, 2=done)"`
}

type SubtaskIDParams struct {
	SubtaskID int `json:"subtask_id" mcp:"The ID of the subtask"`
}

type UpdateSubtaskParams struct {
	SubtaskID     int     `json:"subtask_id" mcp:"The ID of the subtask to update"`
	Title         *string `json:"title,omitempty" mcp:"The new title of the subtask"`
	UserID        *int    `json:"user_id,omitempty" mcp:"The new user ID assigned to the subtask"`
	TimeEstimated *int    `json:"time_estimated,omitempty" mcp:"New estimated time in hours"`
	TimeSpent     *int    `json:"time_spent,omitempty" mcp:"New time spent in hours"`
	Status        *int    `json:"status,omitempty" mcp:"New status of the subtask (0=todo, 1=in progress, 2=done)"`
}

// Tag tools

type SetTaskTagsParams struct {
	TaskID int      `json:"task_id" mcp:"The ID of the task to set tags for"`
	Tags   []string `json:"tags" mcp:"List of tag names to assign to the task"`
}

// File tools

type CreateTaskFileParams struct {
	TaskID   int    `json:"task_id" mcp:"The ID of the task to attach the file to"`
	Filename string `json:"filename" mcp:"The name of the file"`
	Blob     string `json:"blob" mcp:"The file content encoded in base64"`
}

type FileIDParams struct {
	FileID int `json:"file_id" mcp:"The ID of the file"`
}
