// Package omni is the domain command layer over the bridge: task, project,
// folder, and tag operations expressed as AppleScript programs against the
// default OmniFocus document.
package omni

// Task mirrors the object emitted by serializers/task.applescript.
type Task struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Note             *string  `json:"note"`
	DueDate          *string  `json:"dueDate"`
	DeferDate        *string  `json:"deferDate"`
	Completed        bool     `json:"completed"`
	Flagged          bool     `json:"flagged"`
	EstimatedMinutes *int     `json:"estimatedMinutes"`
	ProjectID        *string  `json:"projectId"`
	ProjectName      *string  `json:"projectName"`
	Tags             []string `json:"tags"`
}

// Project mirrors serializers/project.applescript.
type Project struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Note       *string `json:"note"`
	Status     string  `json:"status"`
	Sequential bool    `json:"sequential"`
	FolderID   *string `json:"folderId"`
	FolderName *string `json:"folderName"`
	TaskCount  int     `json:"taskCount"`
}

// Folder mirrors serializers/folder.applescript.
type Folder struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProjectCount int    `json:"projectCount"`
}

// Tag mirrors serializers/tag.applescript.
type Tag struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaskCount int    `json:"taskCount"`
}

// Stats is the productivity snapshot computed in a single invocation.
type Stats struct {
	InboxCount     int `json:"inboxCount"`
	OverdueCount   int `json:"overdueCount"`
	DueSoonCount   int `json:"dueSoonCount"`
	FlaggedCount   int `json:"flaggedCount"`
	CompletedToday int `json:"completedToday"`
	ActiveProjects int `json:"activeProjects"`
}

// CreateTaskRequest carries raw caller input for task creation. Every field
// passes the validation gate before composition; an empty ProjectID means
// the inbox.
type CreateTaskRequest struct {
	Name             string
	Note             string
	ProjectID        string
	DueDate          string
	DeferDate        string
	Flagged          bool
	EstimatedMinutes int
	Tags             []string
}

// UpdateTaskRequest carries raw caller input for task edits. Nil means
// "leave unchanged"; a pointer to the empty string clears the field.
type UpdateTaskRequest struct {
	Name             *string
	Note             *string
	DueDate          *string
	DeferDate        *string
	Flagged          *bool
	EstimatedMinutes *int
}

// CreateProjectRequest carries raw caller input for project creation. An
// empty FolderID places the project at the document root.
type CreateProjectRequest struct {
	Name       string
	Note       string
	FolderID   string
	Sequential bool
}

// ListTasksOptions filters and paginates task listings.
type ListTasksOptions struct {
	IncludeCompleted bool
	ProjectID        string
	Limit            int
	Offset           int
}

// SearchOptions paginates task search.
type SearchOptions struct {
	Limit  int
	Offset int
}
