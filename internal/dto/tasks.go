package dto

// CreateTaskRequest represents the payload to create a task.
// The owner is always the authenticated requester; any owner field in the
// body is ignored.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// UpdateTaskRequest represents fields allowed to update a task
// All fields are optional; only provided ones will be updated
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskResponse represents a task object in responses.
// The owner id is intentionally not exposed.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TaskListResponse is a page of tasks plus pagination metadata
type TaskListResponse struct {
	Items   []TaskResponse `json:"items"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Total   int            `json:"total"`
}
