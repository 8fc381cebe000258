package models

import "time"

// Priority of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the supported priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TodoDB represents a todo row in the database
// swagger:model Todo
type TodoDB struct {
	ID          int64      `json:"id" db:"id"`
	BoardID     int64      `json:"board_id" db:"board_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Priority    Priority   `json:"priority" db:"priority"`
	DueDate     *time.Time `json:"due_date" db:"due_date"`
	IsCompleted bool       `json:"is_completed" db:"is_completed"`
	Position    int        `json:"position" db:"position"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// NewTodo holds the caller-supplied fields of a todo to be created.
type NewTodo struct {
	BoardID     int64
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
}

// TodoPatch is a partial update. Nil fields, and a DueDate that was not
// set, keep their stored value.
type TodoPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     OptionalTime
	IsCompleted *bool
}

// Apply merges the patch into t.
func (p TodoPatch) Apply(t *TodoDB) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate.Set {
		t.DueDate = p.DueDate.Time
	}
	if p.IsCompleted != nil {
		t.IsCompleted = *p.IsCompleted
	}
}

// ReorderItem assigns a new position to one todo.
// swagger:model ReorderItem
type ReorderItem struct {
	ID       int64 `json:"id" example:"2"`
	Position int   `json:"position" example:"0"`
}
