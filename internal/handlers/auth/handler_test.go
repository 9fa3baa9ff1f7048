package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"taskly/infras/otel/mocks"
	"taskly/internal/domains/auth/model/dto"
	serviceMocks "taskly/internal/domains/auth/service/mocks"
	"taskly/internal/handlers/auth"
	"taskly/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockAuth) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockService := serviceMocks.NewMockAuth(ctrl)
	mockOtel := mocks.NewOtel()

	handler := auth.New(mockService, mockOtel)

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func doRequest(router chi.Router, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	return recorder
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("registers user and returns token", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Signup(gomock.Any(), dto.SignupRequest{
				Username: "tester",
				Email:    "test@example.com",
				Password: "password123",
			}).
			Return(dto.AuthResponse{Token: "signed-token"}, nil)

		recorder := doRequest(router, "/auth/signup", `{"username":"tester","email":"test@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.JSONEq(t, `{"token":"signed-token"}`, recorder.Body.String())
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := doRequest(router, "/auth/signup", `{"username":"tester","email":"not-an-email","password":"short"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("duplicate email is 400", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Signup(gomock.Any(), gomock.Any()).
			Return(dto.AuthResponse{}, failure.BadRequestFromString("email already registered"))

		recorder := doRequest(router, "/auth/signup", `{"username":"tester","email":"test@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"email already registered"}`, recorder.Body.String())
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("logs user in and returns token", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Login(gomock.Any(), dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password123",
			}).
			Return(dto.AuthResponse{Token: "signed-token"}, nil)

		recorder := doRequest(router, "/auth/login", `{"email":"test@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"token":"signed-token"}`, recorder.Body.String())
	})

	t.Run("wrong credentials are 401", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(dto.AuthResponse{}, failure.Unauthorized("invalid email or password"))

		recorder := doRequest(router, "/auth/login", `{"email":"test@example.com","password":"wrong-password"}`)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.JSONEq(t, `{"error":"invalid email or password"}`, recorder.Body.String())
	})

	t.Run("rejects missing password", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := doRequest(router, "/auth/login", `{"email":"test@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
