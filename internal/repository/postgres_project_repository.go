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

// projectColumns defines the columns to select for projects
const projectColumns = `id, organization_id, name, COALESCE(description, '') as description,
	COALESCE(status, '') as status, due_date, created_at`

// PostgresProjectRepository implements ProjectRepository using PostgreSQL
type PostgresProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProjectRepository creates a new PostgresProjectRepository
func NewPostgresProjectRepository(pool *pgxpool.Pool) *PostgresProjectRepository {
	return &PostgresProjectRepository{pool: pool}
}

// scanProject scans a row into a Project struct
func (r *PostgresProjectRepository) scanProject(row pgx.Row) (*domain.Project, error) {
	project := &domain.Project{}
	err := row.Scan(
		&project.ID,
		&project.OrganizationID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.DueDate,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// Create creates a new project
func (r *PostgresProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (id, organization_id, name, description, status, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.OrganizationID,
		project.Name,
		nullStringOrValue(project.Description),
		nullStringOrValue(project.Status),
		project.DueDate,
		project.CreatedAt,
	)
	return err
}

// GetByID retrieves a project by ID
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return r.scanProject(r.pool.QueryRow(ctx, query, id))
}

// List retrieves projects, newest first, optionally narrowed to one tenant
func (r *PostgresProjectRepository) List(ctx context.Context, tenantID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	args := []interface{}{}
	if tenantID != "" {
		query += ` WHERE organization_id = $1`
		args = append(args, tenantID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// Update applies a sparse update to a project. The tenant guard runs inside
// the statement so ownership is re-checked at write time.
func (r *PostgresProjectRepository) Update(ctx context.Context, id string, upd *ProjectUpdate, tenantGuard string) (bool, error) {
	clause := buildProjectSet(upd)
	if len(clause.sets) == 0 {
		return false, nil
	}

	query := `UPDATE projects SET ` + strings.Join(clause.sets, ", ") +
		fmt.Sprintf(` WHERE id = $%d`, clause.next(id))
	if tenantGuard != "" {
		query += fmt.Sprintf(` AND organization_id = $%d`, clause.next(tenantGuard))
	}

	tag, err := r.pool.Exec(ctx, query, clause.args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// StatsByTenant computes per-project task aggregates for one tenant. A single
// grouped query keeps the counts mutually consistent.
func (r *PostgresProjectRepository) StatsByTenant(ctx context.Context, tenantID string) ([]*domain.ProjectStats, error) {
	query := `
		SELECT p.id,
		       COUNT(t.id) as task_count,
		       COUNT(t.id) FILTER (WHERE t.status = $2) as completed_tasks
		FROM projects p
		LEFT JOIN tasks t ON t.project_id = p.id
		WHERE p.organization_id = $1
		GROUP BY p.id, p.created_at
		ORDER BY p.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, tenantID, domain.TaskStatusDone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.ProjectStats, 0)
	for rows.Next() {
		s := &domain.ProjectStats{}
		if err := rows.Scan(&s.ProjectID, &s.TaskCount, &s.CompletedTasks); err != nil {
			return nil, err
		}
		if s.TaskCount > 0 {
			s.CompletionRate = float64(s.CompletedTasks) / float64(s.TaskCount)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
