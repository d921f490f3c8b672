package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/domain"
)

// commentColumns defines the columns to select for task comments
const commentColumns = `id, task_id, content, COALESCE(author_email, '') as author_email, timestamp`

// PostgresCommentRepository implements CommentRepository using PostgreSQL
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create creates a new comment
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.TaskComment) error {
	query := `
		INSERT INTO task_comments (id, task_id, content, author_email, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.TaskID,
		comment.Content,
		nullStringOrValue(comment.AuthorEmail),
		comment.Timestamp,
	)
	return err
}

// ListByTask retrieves a task's comments, oldest first
func (r *PostgresCommentRepository) ListByTask(ctx context.Context, taskID string) ([]*domain.TaskComment, error) {
	query := `SELECT ` + commentColumns + ` FROM task_comments WHERE task_id = $1 ORDER BY timestamp ASC`
	return r.queryComments(ctx, query, taskID)
}

// ListByTasks retrieves the comments of several tasks at once
func (r *PostgresCommentRepository) ListByTasks(ctx context.Context, taskIDs []string) ([]*domain.TaskComment, error) {
	if len(taskIDs) == 0 {
		return []*domain.TaskComment{}, nil
	}
	query := `SELECT ` + commentColumns + ` FROM task_comments WHERE task_id = ANY($1) ORDER BY timestamp ASC`
	return r.queryComments(ctx, query, taskIDs)
}

func (r *PostgresCommentRepository) queryComments(ctx context.Context, query string, args ...interface{}) ([]*domain.TaskComment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*domain.TaskComment, 0)
	for rows.Next() {
		comment := &domain.TaskComment{}
		err := rows.Scan(
			&comment.ID,
			&comment.TaskID,
			&comment.Content,
			&comment.AuthorEmail,
			&comment.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}
