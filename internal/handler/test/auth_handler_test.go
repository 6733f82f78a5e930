package test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
	"yatube/internal/models"
)

func newAuthHandlers(auth *MockAuthService) *handlers.Handlers {
	return &handlers.Handlers{
		AuthService: auth,
		Cfg: &config.Config{
			PageSize:        10,
			SessionDuration: 24 * time.Hour,
		},
	}
}

func TestSignupHandler(t *testing.T) {
	t.Run("Успешная регистрация открывает сессию", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Register", mock.Anything, models.CreateUserRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		}).Return(&models.User{UserID: "u1", Username: "alice"}, nil)
		mockAuth.On("Login", mock.Anything, "alice", "password123").
			Return(&models.User{UserID: "u1", Username: "alice"}, "token123", nil)

		handler := newAuthHandlers(mockAuth)

		req := newFormRequest(http.MethodPost, "/auth/signup/",
			"username=alice&email=alice@example.com&password=password123")

		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))

		cookies := rr.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "session", cookies[0].Name)
		assert.Equal(t, "token123", cookies[0].Value)

		mockAuth.AssertExpectations(t)
	})

	t.Run("Короткий пароль отклоняется", func(t *testing.T) {
		mockAuth := new(MockAuthService)

		handler := newAuthHandlers(mockAuth)

		req := newFormRequest(http.MethodPost, "/auth/signup/",
			"username=alice&email=alice@example.com&password=123")

		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuth.AssertNotCalled(t, "Register")
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("Успешный вход", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Login", mock.Anything, "alice", "password123").
			Return(&models.User{UserID: "u1", Username: "alice"}, "token123", nil)

		handler := newAuthHandlers(mockAuth)

		req := newFormRequest(http.MethodPost, "/auth/login/", "username=alice&password=password123")

		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)

		cookies := rr.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "token123", cookies[0].Value)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Login", mock.Anything, "alice", "wrong").
			Return(nil, "", assert.AnError)

		handler := newAuthHandlers(mockAuth)

		req := newFormRequest(http.MethodPost, "/auth/login/", "username=alice&password=wrong")

		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
	})
}
