package task_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"taskly/infras/jwt"
	jwtMocks "taskly/infras/jwt/mocks"
	"taskly/infras/otel/mocks"
	"taskly/internal/domains/task/model/dto"
	serviceMocks "taskly/internal/domains/task/service/mocks"
	"taskly/internal/handlers/task"
	"taskly/shared/failure"
	"taskly/transport/http/middleware"
)

const testUserID = int64(7)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockTask, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockService := serviceMocks.NewMockTask(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	authMiddleware := middleware.NewAuthMiddleware(mockJWT, mockOtel)
	handler := task.New(mockService, authMiddleware, mockOtel)

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService, mockJWT
}

func expectValidToken(mockJWT *jwtMocks.MockJWT) {
	mockJWT.EXPECT().
		ValidateToken("valid-token").
		Return(&jwt.Claims{UserID: testUserID, Username: "tester", Email: "test@example.com"}, nil)
}

func doRequest(router chi.Router, method, target, token, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestTaskHandler_GetTasks(t *testing.T) {
	t.Run("returns bare array of tasks", func(t *testing.T) {
		router, mockService, mockJWT := newRouter(t)

		expectValidToken(mockJWT)

		mockService.EXPECT().
			GetAll(gomock.Any(), testUserID).
			Return([]dto.TaskResponse{
				{ID: 1, UserID: testUserID, Title: "first", Priority: "high", Completed: false},
				{ID: 2, UserID: testUserID, Title: "second", Priority: "medium", Completed: true},
			}, nil)

		recorder := doRequest(router, http.MethodGet, "/todos", "valid-token", "")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var tasks []dto.TaskResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tasks))
		assert.Len(t, tasks, 2)
		assert.Equal(t, "first", tasks[0].Title)
		assert.True(t, tasks[1].Completed)
	})

	t.Run("empty list serializes as empty array", func(t *testing.T) {
		router, mockService, mockJWT := newRouter(t)

		expectValidToken(mockJWT)

		mockService.EXPECT().
			GetAll(gomock.Any(), testUserID).
			Return([]dto.TaskResponse{}, nil)

		recorder := doRequest(router, http.MethodGet, "/todos", "valid-token", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	t.Run("rejects missing token before touching the service", func(t *testing.T) {
		router, _, _ := newRouter(t)

		recorder := doRequest(router, http.MethodGet, "/todos", "", "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.JSONEq(t, `{"error":"Missing authorization header"}`, recorder.Body.String())
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		router, _, mockJWT := newRouter(t)

		mockJWT.EXPECT().
			ValidateToken("garbage").
			Return(nil, jwt.ErrInvalidToken)

		recorder := doRequest(router, http.MethodGet, "/todos", "garbage", "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.JSONEq(t, `{"error":"Invalid token"}`, recorder.Body.String())
	})
}

func TestTaskHandler_CreateTask(t *testing.T) {
	t.Run("creates task", func(t *testing.T) {
		router, mockService, mockJWT := newRouter(t)

		expectValidToken(mockJWT)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), testUserID).
			Return(dto.TaskResponse{ID: 42, UserID: testUserID, Title: "write report", Priority: "medium"}, nil)

		recorder := doRequest(router, http.MethodPost, "/todos", "valid-token", `{"title":"write report"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var created dto.TaskResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, "medium", created.Priority)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		router, _, mockJWT := newRouter(t)

		expectValidToken(mockJWT)

		recorder := doRequest(router, http.MethodPost, "/todos", "valid-token", `{"description":"no title"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"Title is required"}`, recorder.Body.String())
	})
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	t.Run("updates task", func(t *testing.T) {
		router, mockService, mockJWT := newRouter(t)

		expectValidToken(mockJWT)

		mockService.EXPECT().
			Update(gomock.Any(), gomock.Any(), int64(42), testUserID).
			Return(dto.UpdateTaskResponse{Message: "Todo updated successfully", Completed: true}, nil)

		recorder := doRequest(router, http.MethodPut, "/todos/42", "valid-token", `{"title":"revised","completed":true}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"message":"Todo updated successfully","completed":true}`, recorder.Body.String())
	})

	t.Run("missing task is 404", func(t *testing.T) {
		router, mockService, mockJWT := newRouter(t)

		expectValidToken(mockJWT)

		mockService.EXPECT().
			Update(gomock.Any(), gomock.Any(), int64(42), testUserID).
			Return(dto.UpdateTaskResponse{}, failure.NotFound("Todo not found"))

		recorder := doRequest(router, http.MethodPut, "/todos/42", "valid-token", `{"title":"revised"}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error":"Todo not found"}`, recorder.Body.String())
	})

	t.Run("non-numeric id is 404", func(t *testing.T) {
		router, _, mockJWT := newRouter(t)

		expectValidToken(mockJWT)

		recorder := doRequest(router, http.MethodPut, "/todos/abc", "valid-token", `{"title":"revised"}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error":"Todo not found"}`, recorder.Body.String())
	})
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	t.Run("deletes task", func(t *testing.T) {
		router, mockService, mockJWT := newRouter(t)

		expectValidToken(mockJWT)

		mockService.EXPECT().
			Delete(gomock.Any(), int64(42), testUserID).
			Return(dto.DeleteTaskResponse{Message: "Todo deleted successfully"}, nil)

		recorder := doRequest(router, http.MethodDelete, "/todos/42", "valid-token", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"message":"Todo deleted successfully"}`, recorder.Body.String())
	})

	t.Run("missing task is 404", func(t *testing.T) {
		router, mockService, mockJWT := newRouter(t)

		expectValidToken(mockJWT)

		mockService.EXPECT().
			Delete(gomock.Any(), int64(42), testUserID).
			Return(dto.DeleteTaskResponse{}, failure.NotFound("Todo not found"))

		recorder := doRequest(router, http.MethodDelete, "/todos/42", "valid-token", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error":"Todo not found"}`, recorder.Body.String())
	})
}
