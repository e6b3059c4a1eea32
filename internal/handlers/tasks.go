package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"TASK_MANAGER_API/internal/dto"
	"TASK_MANAGER_API/internal/models"
	"TASK_MANAGER_API/internal/store"
	"TASK_MANAGER_API/internal/utils"
	"TASK_MANAGER_API/internal/validator"
)

// TaskStore is the persistence surface the task handlers need
type TaskStore interface {
	Insert(ctx context.Context, t *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, t *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f store.TaskFilter) ([]models.Task, int, error)
}

// TasksHandler manages task-related endpoints
type TasksHandler struct {
	tasks TaskStore
}

// NewTasksHandler creates a new TasksHandler
func NewTasksHandler(tasks TaskStore) *TasksHandler {
	return &TasksHandler{tasks: tasks}
}

// ListTasks handles GET /tasks with filters and pagination
// @Summary List tasks visible to the requester
// @Description Admins see all tasks, other users only their own. Without a token the result is always an empty page.
// @Tags tasks
// @Produce json
// @Param page query int false "1-indexed page number"
// @Param per_page query int false "items per page, capped at 100"
// @Param completed query string false "true|1|false|0"
// @Security BearerAuth
// @Success 200 {object} dto.TaskListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tasks [get]
func (h *TasksHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.TaskFilter{
		Page:      1,
		PerPage:   store.DefaultPerPage,
		Completed: parseCompletedParam(q.Get("completed")),
	}
	if v := strings.TrimSpace(q.Get("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			filter.Page = n
		}
	}
	if v := strings.TrimSpace(q.Get("per_page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			filter.PerPage = n
		}
	}
	filter.Normalize()

	// Anonymous listing is tolerated and always empty
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteJSONResponse(w, http.StatusOK, dto.TaskListResponse{
			Items:   []dto.TaskResponse{},
			Page:    filter.Page,
			PerPage: filter.PerPage,
			Total:   0,
		})
		return
	}

	// Non-admins only ever see their own tasks
	if !identity.IsAdmin() {
		filter.OwnerID = &identity.UserID
	}

	tasks, total, err := h.tasks.List(r.Context(), filter)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	items := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskResponse(&t))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TaskListResponse{
		Items:   items,
		Page:    filter.Page,
		PerPage: filter.PerPage,
		Total:   total,
	})
}

// GetTask handles GET /tasks/{id}
// @Summary Get a single task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Security BearerAuth
// @Success 200 {object} dto.TaskResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TasksHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	task, done := h.loadAuthorizedTask(w, r, identity)
	if done {
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, taskResponse(task))
}

// CreateTask handles POST /tasks
// @Summary Create a task
// @Description The task is always owned by the authenticated requester
// @Tags tasks
// @Accept json
// @Produce json
// @Param payload body dto.CreateTaskRequest true "Task payload"
// @Security BearerAuth
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tasks [post]
func (h *TasksHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateTaskRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	v := validator.New()
	v.CheckTitle(req.Title)
	if v.HasErrors() {
		utils.WriteValidationErrors(w, v.Errors())
		return
	}

	now := time.Now()
	task := models.Task{
		ID:        uuid.New(),
		Title:     req.Title,
		OwnerID:   identity.UserID, // forced, regardless of request body
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := h.tasks.Insert(r.Context(), &task); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, taskResponse(&task))
}

// UpdateTask handles PUT /tasks/{id}
// @Summary Update a task
// @Description Applies only the provided fields; an invalid field fails the whole update
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param payload body dto.UpdateTaskRequest true "Update payload"
// @Security BearerAuth
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TasksHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	task, done := h.loadAuthorizedTask(w, r, identity)
	if done {
		return
	}

	var req dto.UpdateTaskRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	// Validate the whole patch before touching the record
	v := validator.New()
	if req.Title != nil {
		v.CheckTitle(*req.Title)
	}
	if v.HasErrors() {
		utils.WriteValidationErrors(w, v.Errors())
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	task.UpdatedAt = time.Now()

	if err := h.tasks.Update(r.Context(), task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Task not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, taskResponse(task))
}

// DeleteTask handles DELETE /tasks/{id}
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Security BearerAuth
// @Success 204 "Task deleted"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TasksHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	task, done := h.loadAuthorizedTask(w, r, identity)
	if done {
		return
	}

	if err := h.tasks.Delete(r.Context(), task.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Task not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// loadAuthorizedTask resolves the path id, loads the task, and applies the
// owner-or-admin policy. When done is true a response has already been
// written and the caller should return.
func (h *TasksHandler) loadAuthorizedTask(w http.ResponseWriter, r *http.Request, identity models.Identity) (task *models.Task, done bool) {
	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		// An id that cannot exist is indistinguishable from a missing one
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Task not found")
		return nil, true
	}

	task, err = h.tasks.GetByID(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Task not found")
			return nil, true
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return nil, true
	}

	if !identity.CanAccess(task.OwnerID) {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Not authorized to access this task")
		return nil, true
	}
	return task, false
}

// parseCompletedParam maps the completed query parameter onto a filter
// value. Unrecognized tokens leave the filter unset.
func parseCompletedParam(raw string) *bool {
	v := true
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return &v
	case "false", "0":
		v = false
		return &v
	default:
		return nil
	}
}

func taskResponse(t *models.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   utils.FormatTimestamp(t.CreatedAt),
		UpdatedAt:   utils.FormatTimestamp(t.UpdatedAt),
	}
}
