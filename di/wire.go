//go:build wireinject
// +build wireinject

package di

import (
	"taskly/config"
	"taskly/infras/jwt"
	"taskly/infras/kafka"
	"taskly/infras/otel"
	"taskly/infras/postgres"
	"taskly/infras/redis"
	"taskly/shared/cache"
	"taskly/transport/http"
	"taskly/transport/http/middleware"
	"taskly/transport/http/router"

	taskEvent "taskly/internal/domains/task/event"
	taskRepository "taskly/internal/domains/task/repository"
	taskService "taskly/internal/domains/task/service"
	taskHandler "taskly/internal/handlers/task"

	authService "taskly/internal/domains/auth/service"
	userRepository "taskly/internal/domains/user/repository"
	authHandler "taskly/internal/handlers/auth"
	healthHandler "taskly/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var taskDomain = wire.NewSet(
	taskRepository.New,
	taskEvent.NewPublisher,
	taskService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	taskDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	taskHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
