package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskly/internal/domains/task/model"
	"taskly/internal/domains/task/model/dto"
	"taskly/shared/constant"
	"taskly/shared/timezone"
)

func TestCreateTaskRequest_ToModel(t *testing.T) {
	t.Run("defaults priority to medium", func(t *testing.T) {
		req := dto.CreateTaskRequest{Title: "write report"}

		task := req.ToModel(7)

		assert.Equal(t, int64(7), task.UserID)
		assert.Equal(t, constant.PriorityMedium, task.Priority)
		assert.False(t, task.Completed.Bool())
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("keeps explicit priority", func(t *testing.T) {
		req := dto.CreateTaskRequest{Title: "write report", Priority: constant.PriorityHigh}

		task := req.ToModel(7)

		assert.Equal(t, constant.PriorityHigh, task.Priority)
	})
}

func TestUpdateTaskRequest_ToModel(t *testing.T) {
	due := timezone.Now().Add(48 * time.Hour)

	req := dto.UpdateTaskRequest{
		Title:     "revised",
		Completed: true,
		Priority:  constant.PriorityLow,
		DueDate:   &due,
	}

	task := req.ToModel(42, 7)

	assert.Equal(t, int64(42), task.ID)
	assert.Equal(t, int64(7), task.UserID)
	assert.True(t, task.Completed.Bool())
	assert.Equal(t, constant.PriorityLow, task.Priority)

	// Omitted fields are written as zero values on a full replace.
	empty := dto.UpdateTaskRequest{}
	blank := empty.ToModel(42, 7)

	assert.Empty(t, blank.Title)
	assert.Nil(t, blank.DueDate)
	assert.False(t, blank.Completed.Bool())
}

func TestTaskResponse_FromModel(t *testing.T) {
	due := timezone.Now().Add(24 * time.Hour)
	created := timezone.Now()

	mod := model.Task{
		ID:        1,
		UserID:    7,
		Title:     "first",
		Priority:  constant.PriorityHigh,
		DueDate:   &due,
		Completed: true,
		CreatedAt: created,
	}

	var res dto.TaskResponse
	res.FromModel(mod)

	assert.Equal(t, int64(1), res.ID)
	assert.True(t, res.Completed)
	assert.NotNil(t, res.DueDate)
	assert.Equal(t, timezone.Format(due, constant.DateFormat), *res.DueDate)
	assert.Equal(t, timezone.Format(created, constant.DateFormat), res.CreatedAt)
}

func TestFromModels(t *testing.T) {
	t.Run("nil models serialize as empty array", func(t *testing.T) {
		res := dto.FromModels(nil)

		payload, err := json.Marshal(res)

		assert.NoError(t, err)
		assert.JSONEq(t, "[]", string(payload))
	})

	t.Run("completed is a boolean in JSON", func(t *testing.T) {
		res := dto.FromModels([]model.Task{{ID: 1, Title: "first", Completed: true}})

		payload, err := json.Marshal(res)

		assert.NoError(t, err)
		assert.Contains(t, string(payload), `"completed":true`)
	})
}
