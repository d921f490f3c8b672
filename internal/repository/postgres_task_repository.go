package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// taskColumns defines the columns to select for tasks
const taskColumns = `t.id, t.project_id, t.title, COALESCE(t.description, '') as description,
	COALESCE(t.status, '') as status, COALESCE(t.assignee_email, '') as assignee_email,
	t.due_date, t.created_at`

// PostgresTaskRepository implements TaskRepository using PostgreSQL
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository
func NewPostgresTaskRepository(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{pool: pool}
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	task := &domain.Task{}
	err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.AssigneeEmail,
		&task.DueDate,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

// Create creates a new task
func (r *PostgresTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, project_id, title, description, status, assignee_email, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		task.ID,
		task.ProjectID,
		task.Title,
		nullStringOrValue(task.Description),
		nullStringOrValue(task.Status),
		nullStringOrValue(task.AssigneeEmail),
		task.DueDate,
		task.CreatedAt,
	)
	return err
}

// GetWithTenant retrieves a task together with its effective tenant. The
// tenant comes from joining through the owning project, never from the caller.
func (r *PostgresTaskRepository) GetWithTenant(ctx context.Context, id string) (*domain.Task, string, error) {
	query := `
		SELECT ` + taskColumns + `, p.organization_id
		FROM tasks t
		JOIN projects p ON t.project_id = p.id
		WHERE t.id = $1
	`
	task := &domain.Task{}
	var tenantID string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.ProjectID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.AssigneeEmail,
		&task.DueDate,
		&task.CreatedAt,
		&tenantID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", err
	}
	return task, tenantID, nil
}

// ListByProject retrieves a project's tasks, oldest first
func (r *PostgresTaskRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.project_id = $1 ORDER BY t.created_at ASC`
	return r.queryTasks(ctx, query, projectID)
}

// ListByProjects retrieves the tasks of several projects at once
func (r *PostgresTaskRepository) ListByProjects(ctx context.Context, projectIDs []string) ([]*domain.Task, error) {
	if len(projectIDs) == 0 {
		return []*domain.Task{}, nil
	}
	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.project_id = ANY($1) ORDER BY t.created_at ASC`
	return r.queryTasks(ctx, query, projectIDs)
}

func (r *PostgresTaskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]*domain.Task, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Update applies a sparse update to a task. With a tenant guard the statement
// requires the task's current project to belong to the guard tenant, and for
// reassignments additionally requires the target project to belong to it, so
// a concurrent move to another tenant cannot slip through between the
// caller's read and this write.
func (r *PostgresTaskRepository) Update(ctx context.Context, id string, upd *TaskUpdate, tenantGuard string) (bool, error) {
	clause := buildTaskSet(upd)
	if len(clause.sets) == 0 {
		return false, nil
	}

	query := `UPDATE tasks SET ` + strings.Join(clause.sets, ", ") +
		fmt.Sprintf(` WHERE id = $%d`, clause.next(id))
	if tenantGuard != "" {
		guard := clause.next(tenantGuard)
		query += fmt.Sprintf(` AND project_id IN (SELECT id FROM projects WHERE organization_id = $%d)`, guard)
		if upd.ProjectID != nil {
			query += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM projects WHERE id = $%d AND organization_id = $%d)`,
				clause.next(*upd.ProjectID), guard)
		}
	}

	tag, err := r.pool.Exec(ctx, query, clause.args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
