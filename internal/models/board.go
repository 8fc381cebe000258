package models

import "time"

// BoardDB represents a board row in the database
// swagger:model Board
type BoardDB struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// BoardSummary is a board annotated with the counters shown in board listings.
// swagger:model BoardSummary
type BoardSummary struct {
	BoardDB
	TodoCount      int64 `json:"todo_count" db:"todo_count"`
	CompletedCount int64 `json:"completed_count" db:"completed_count"`
}
