package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"taskly/infras/otel"
	"taskly/infras/postgres"
	"taskly/internal/domains/user/model"
	"taskly/shared/constant"
	"taskly/shared/logger"

	"github.com/pkg/errors"
)

const (
	insertQuery = `INSERT INTO users (username, email, password, created_at)
		VALUES (:username, :email, :password, :created_at)
		RETURNING id`

	getByEmailQuery = `SELECT id, username, email, password, created_at
		FROM users
		WHERE email = :email`

	existsByEmailQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE email = :email)`
)

type User interface {
	Insert(ctx context.Context, user model.User) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, user model.User) (model.User, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, insertQuery)

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, insertQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return user, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &user.ID, user); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return user, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return user, nil
}

// GetByEmail returns the zero model with a nil error when no row matches.
func (repo *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByEmail", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getByEmailQuery)

	var user model.User

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, getByEmailQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return user, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{model.FieldEmail: email}

	if err = prepare.GetContext(ctx, &user, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, nil
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return user, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return user, nil
}

func (repo *repositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ExistsByEmail", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, existsByEmailQuery)

	var exists bool

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, existsByEmailQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	args := map[string]any{model.FieldEmail: email}

	if err = prepare.GetContext(ctx, &exists, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check data existence (%s): %w", model.EntityName, err)
	}

	return exists, nil
}
