package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"taskly/infras/otel"
	"taskly/infras/postgres"
	"taskly/internal/domains/task/model"
	"taskly/shared/constant"
	"taskly/shared/logger"
)

const (
	insertQuery = `INSERT INTO todos (user_id, title, description, priority, due_date, completed, created_at)
		VALUES (:user_id, :title, :description, :priority, :due_date, :completed, :created_at)
		RETURNING id`

	// Tasks without a due date sort last; ties break on newest first.
	getAllQuery = `SELECT id, user_id, title, description, priority, due_date, completed, created_at
		FROM todos
		WHERE user_id = :user_id
		ORDER BY due_date ASC NULLS LAST, created_at DESC`

	// The user_id predicate doubles as the ownership check: a task owned by
	// someone else affects zero rows, indistinguishable from a missing one.
	updateQuery = `UPDATE todos
		SET title = :title, description = :description, completed = :completed, priority = :priority, due_date = :due_date
		WHERE id = :id AND user_id = :user_id`

	deleteQuery = `DELETE FROM todos WHERE id = :id AND user_id = :user_id`
)

type Task interface {
	Insert(ctx context.Context, task model.Task) (model.Task, error)
	GetAllByUser(ctx context.Context, userID int64) ([]model.Task, error)
	Update(ctx context.Context, task model.Task) (int64, error)
	Delete(ctx context.Context, id, userID int64) (int64, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, task model.Task) (model.Task, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, insertQuery)

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, insertQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return task, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &task.ID, task); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return task, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return task, nil
}

func (repo *repositoryImpl) GetAllByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAllByUser", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getAllQuery)

	var models []model.Task

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, getAllQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{model.FieldUserID: userID}

	if err = prepare.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return models, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, task model.Task) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, updateQuery)

	result, err := repo.db.Write.NamedExecContext(ctx, updateQuery, task)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected, nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id, userID int64) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, deleteQuery)

	args := map[string]any{
		model.FieldID:     id,
		model.FieldUserID: userID,
	}

	result, err := repo.db.Write.NamedExecContext(ctx, deleteQuery, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected, nil
}
