package domain

import "time"

// TaskComment represents a comment on a task. TaskID is immutable; the
// comment's effective tenant is its task's project's organization id.
type TaskComment struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
