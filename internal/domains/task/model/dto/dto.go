package dto

import (
	"taskly/internal/domains/task/model"
	"taskly/shared/constant"
	"taskly/shared/timezone"
	"taskly/shared/types"
	"time"
)

type CreateTaskRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description *string    `json:"description" validate:"omitempty"`
	Priority    string     `json:"priority"    validate:"omitempty"`
	DueDate     *time.Time `json:"due_date"    validate:"omitempty"`
}

func (c *CreateTaskRequest) ToModel(userID int64) model.Task {
	priority := c.Priority
	if priority == "" {
		priority = constant.PriorityMedium
	}

	return model.Task{
		UserID:      userID,
		Title:       c.Title,
		Description: c.Description,
		Priority:    priority,
		DueDate:     c.DueDate,
		Completed:   false,
		CreatedAt:   timezone.Now(),
	}
}

// UpdateTaskRequest is a full replacement set. Every field is written on
// update; fields the caller omits are written as their zero values.
type UpdateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func (u *UpdateTaskRequest) ToModel(id, userID int64) model.Task {
	return model.Task{
		ID:          id,
		UserID:      userID,
		Title:       u.Title,
		Description: u.Description,
		Priority:    u.Priority,
		DueDate:     u.DueDate,
		Completed:   types.BoolInt(u.Completed),
	}
}

type TaskResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
}

func (r *TaskResponse) FromModel(mod model.Task) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.Title = mod.Title
	r.Description = mod.Description
	r.Priority = mod.Priority
	r.Completed = mod.Completed.Bool()
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)

	if mod.DueDate != nil {
		due := timezone.Format(*mod.DueDate, constant.DateFormat)
		r.DueDate = &due
	}
}

func FromModels(models []model.Task) []TaskResponse {
	tasks := make([]TaskResponse, len(models))
	for i, mod := range models {
		tasks[i].FromModel(mod)
	}

	return tasks
}

type UpdateTaskResponse struct {
	Message   string `json:"message"`
	Completed bool   `json:"completed"`
}

type DeleteTaskResponse struct {
	Message string `json:"message"`
}
