package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"taskly/config"
	"taskly/infras/otel"
	"taskly/internal/domains/task/event"
	"taskly/internal/domains/task/model"
	"taskly/internal/domains/task/model/dto"
	"taskly/internal/domains/task/repository"
	"taskly/shared"
	"taskly/shared/cache"
	"taskly/shared/constant"
	"taskly/shared/failure"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	msgTaskNotFound = "Todo not found"
	msgTaskUpdated  = "Todo updated successfully"
	msgTaskDeleted  = "Todo deleted successfully"
)

type Task interface {
	Create(ctx context.Context, req dto.CreateTaskRequest, userID int64) (dto.TaskResponse, error)
	GetAll(ctx context.Context, userID int64) ([]dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id, userID int64) (dto.UpdateTaskResponse, error)
	Delete(ctx context.Context, id, userID int64) (dto.DeleteTaskResponse, error)
}

type serviceImpl struct {
	repo      repository.Task
	cache     cache.RedisCache
	publisher event.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Task, cache cache.RedisCache, publisher event.Publisher, cfg *config.Config, otel otel.Otel) Task {
	return &serviceImpl{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest, userID int64) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	task, err := s.repo.Insert(ctx, req.ToModel(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to create task")

		return res, fmt.Errorf("failed to create task: %w", err)
	}

	s.invalidateCache(ctx, userID)
	s.publisher.TaskCreated(ctx, task)

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, userID int64) (res []dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := taskListCacheKey(userID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to read task list cache")
	}

	models, err := s.repo.GetAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tasks")

		return res, fmt.Errorf("failed to get tasks: %w", err)
	}

	res = dto.FromModels(models)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to save task list cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id, userID int64) (res dto.UpdateTaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	task := req.ToModel(id, userID)

	affected, err := s.repo.Update(ctx, task)
	if err != nil {
		log.Error().Err(err).Msg("failed to update task")

		return res, fmt.Errorf("failed to update task: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound(msgTaskNotFound) // nolint:wrapcheck
	}

	s.invalidateCache(ctx, userID)
	s.publisher.TaskUpdated(ctx, task)

	res.Message = msgTaskUpdated
	res.Completed = task.Completed.Bool()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, userID int64) (res dto.DeleteTaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete task")

		return res, fmt.Errorf("failed to delete task: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound(msgTaskNotFound) // nolint:wrapcheck
	}

	s.invalidateCache(ctx, userID)
	s.publisher.TaskDeleted(ctx, id, userID)

	res.Message = msgTaskDeleted

	return res, nil
}

func (s *serviceImpl) invalidateCache(ctx context.Context, userID int64) {
	cacheKey := taskListCacheKey(userID)

	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to invalidate task list cache")
	}
}

func taskListCacheKey(userID int64) string {
	return shared.BuildCacheKey(model.TableName, strconv.FormatInt(userID, 10))
}
