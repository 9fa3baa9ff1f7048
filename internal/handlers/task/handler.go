package task

import (
	"net/http"
	"strconv"
	"taskly/infras/otel"
	"taskly/internal/domains/task/model/dto"
	"taskly/internal/domains/task/service"
	"taskly/shared/constant"
	"taskly/shared/failure"
	"taskly/shared/validator"
	"taskly/transport/http/middleware"
	"taskly/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Task
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Task, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Get("/", handler.GetTasks)
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Put("/{id}", handler.UpdateTask)
		routerGroup.Delete("/{id}", handler.DeleteTask)
	})
}

// GetTasks retrieves the authenticated user's tasks.
// @Summary Get all tasks
// @Description Retrieve every task owned by the authenticated user, due soonest first.
// @Tags Todo
// @Accept json
// @Produce json
// @Success 200 {array} dto.TaskResponse "List of tasks"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos [get]
// @Security BearerAuth
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	userID, _ := middleware.UserID(ctx)

	tasks, err := handler.service.GetAll(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tasks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tasks retrieved successfully")

	response.WithJSON(w, http.StatusOK, tasks)
}

// CreateTask handles the creation of a new task.
// @Summary Create a new task
// @Description Create a new task with the provided details. Priority defaults to medium.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Create Task Request"
// @Success 201 {object} dto.TaskResponse "Created task"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, failure.BadRequestFromString("Title is required"))

		return
	}

	userID, _ := middleware.UserID(ctx)

	task, err := handler.service.Create(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Task created successfully")

	response.WithJSON(w, http.StatusCreated, task)
}

// UpdateTask replaces an existing task by its ID.
// @Summary Update a task by ID
// @Description Replace every field of an existing task owned by the authenticated user.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Update Task Request"
// @Success 200 {object} dto.UpdateTaskResponse "Todo updated successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id, err := parseTaskID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateTaskRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := middleware.UserID(ctx)

	res, err := handler.service.Update(ctx, req, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Task updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteTask deletes a task by its ID.
// @Summary Delete a task by ID
// @Description Delete a task owned by the authenticated user.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} dto.DeleteTaskResponse "Todo deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todos/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()

	id, err := parseTaskID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	userID, _ := middleware.UserID(ctx)

	res, err := handler.service.Delete(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Task deleted successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// A non-numeric id cannot match any task, so it reads as not found rather
// than a malformed request.
func parseTaskID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.NotFound("Todo not found") // nolint:wrapcheck
	}

	return id, nil
}
