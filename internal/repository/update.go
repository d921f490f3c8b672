package repository

import (
	"fmt"
	"time"
)

// ProjectUpdate is the typed sparse mutation for projects. A nil field is
// left untouched; a non-nil field is applied even when its value is empty.
// The owning organization id is not representable here: project ownership is
// immutable after creation.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *string
	DueDate     *time.Time
}

// IsEmpty reports whether the update would change nothing
func (u *ProjectUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Status == nil && u.DueDate == nil
}

// TaskUpdate is the typed sparse mutation for tasks. ProjectID being non-nil
// reassigns the task to another project; callers must have policy-checked the
// target project's tenant before passing it here.
type TaskUpdate struct {
	ProjectID     *string
	Title         *string
	Description   *string
	Status        *string
	AssigneeEmail *string
	DueDate       *time.Time
}

// IsEmpty reports whether the update would change nothing
func (u *TaskUpdate) IsEmpty() bool {
	return u.ProjectID == nil && u.Title == nil && u.Description == nil &&
		u.Status == nil && u.AssigneeEmail == nil && u.DueDate == nil
}

// setClause accumulates SET fragments from a closed column set. Column names
// are hard-coded at each append site, never taken from input, so the builder
// cannot be steered into unvalidated fields.
type setClause struct {
	sets []string
	args []interface{}
	idx  int
}

func newSetClause() *setClause {
	return &setClause{idx: 1}
}

func (c *setClause) add(column string, value interface{}) {
	c.sets = append(c.sets, fmt.Sprintf("%s = $%d", column, c.idx))
	c.args = append(c.args, value)
	c.idx++
}

// addNullable stores NULL for empty strings, matching how optional columns
// are written on insert.
func (c *setClause) addNullable(column string, value string) {
	if value == "" {
		c.sets = append(c.sets, column+" = NULL")
		return
	}
	c.add(column, value)
}

// addNullableTime stores NULL for the zero time, which is how a sparse input
// clears a due date.
func (c *setClause) addNullableTime(column string, value time.Time) {
	if value.IsZero() {
		c.sets = append(c.sets, column+" = NULL")
		return
	}
	c.add(column, value)
}

// next reserves the next placeholder for a non-SET argument (WHERE clauses)
func (c *setClause) next(value interface{}) int {
	n := c.idx
	c.args = append(c.args, value)
	c.idx++
	return n
}

// buildProjectSet translates a ProjectUpdate into SET fragments
func buildProjectSet(u *ProjectUpdate) *setClause {
	c := newSetClause()
	if u.Name != nil {
		c.add("name", *u.Name)
	}
	if u.Description != nil {
		c.addNullable("description", *u.Description)
	}
	if u.Status != nil {
		c.add("status", *u.Status)
	}
	if u.DueDate != nil {
		c.addNullableTime("due_date", *u.DueDate)
	}
	return c
}

// buildTaskSet translates a TaskUpdate into SET fragments
func buildTaskSet(u *TaskUpdate) *setClause {
	c := newSetClause()
	if u.ProjectID != nil {
		c.add("project_id", *u.ProjectID)
	}
	if u.Title != nil {
		c.add("title", *u.Title)
	}
	if u.Description != nil {
		c.addNullable("description", *u.Description)
	}
	if u.Status != nil {
		c.add("status", *u.Status)
	}
	if u.AssigneeEmail != nil {
		c.addNullable("assignee_email", *u.AssigneeEmail)
	}
	if u.DueDate != nil {
		c.addNullableTime("due_date", *u.DueDate)
	}
	return c
}
