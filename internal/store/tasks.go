package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"TASK_MANAGER_API/internal/models"
)

// MaxPerPage caps the page size of task listings
const MaxPerPage = 100

// DefaultPerPage is the page size used when the caller does not ask for one
const DefaultPerPage = 10

// TaskFilter narrows a task listing. A nil OwnerID means all owners
// (admin view); a nil Completed means no completion filter.
type TaskFilter struct {
	OwnerID   *uuid.UUID
	Completed *bool
	Page      int
	PerPage   int
}

// Normalize clamps pagination to sane bounds: 1-indexed page, per-page
// capped at MaxPerPage.
func (f *TaskFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
}

// TaskStore persists task records
type TaskStore struct {
	db *pgxpool.Pool
}

// NewTaskStore creates a new TaskStore backed by the given pool
func NewTaskStore(db *pgxpool.Pool) *TaskStore {
	return &TaskStore{db: db}
}

// Insert stores a new task
func (s *TaskStore) Insert(ctx context.Context, t *models.Task) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO tasks (id, title, description, completed, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Title, t.Description, t.Completed, t.OwnerID, t.CreatedAt, t.UpdatedAt)
	return err
}

// GetByID looks up a task by id. Returns ErrNotFound when no task with
// that id exists.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var t models.Task
	err := s.db.QueryRow(ctx,
		`SELECT id, title, description, completed, owner_id, created_at, updated_at
		   FROM tasks WHERE id = $1`, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update persists the mutable fields of a task. Returns ErrNotFound when
// the task no longer exists.
func (s *TaskStore) Update(ctx context.Context, t *models.Task) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tasks
		    SET title = $1,
		        description = $2,
		        completed = $3,
		        updated_at = $4
		  WHERE id = $5`,
		t.Title, t.Description, t.Completed, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a task. Returns ErrNotFound when no row was deleted, so
// a second delete on the same id fails.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns one page of tasks matching the filter, newest first, plus
// the total number of matching tasks. Out-of-range pages yield an empty
// slice with an accurate total.
func (s *TaskStore) List(ctx context.Context, f TaskFilter) ([]models.Task, int, error) {
	f.Normalize()

	var total int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM tasks
		  WHERE ($1::uuid IS NULL OR owner_id = $1)
		    AND ($2::boolean IS NULL OR completed = $2)`,
		f.OwnerID, f.Completed).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, title, description, completed, owner_id, created_at, updated_at
		   FROM tasks
		  WHERE ($1::uuid IS NULL OR owner_id = $1)
		    AND ($2::boolean IS NULL OR completed = $2)
		  ORDER BY created_at DESC
		  LIMIT $3 OFFSET $4`,
		f.OwnerID, f.Completed, f.PerPage, (f.Page-1)*f.PerPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, f.PerPage)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}
