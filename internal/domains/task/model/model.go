package model

import (
	"taskly/shared/types"
	"time"
)

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPriority    = "priority"
	FieldDueDate     = "due_date"
	FieldCompleted   = "completed"
)

type Task struct {
	ID          int64         `db:"id"`
	UserID      int64         `db:"user_id"`
	Title       string        `db:"title"`
	Description *string       `db:"description"`
	Priority    string        `db:"priority"`
	DueDate     *time.Time    `db:"due_date"`
	Completed   types.BoolInt `db:"completed"`
	CreatedAt   time.Time     `db:"created_at"`
}
