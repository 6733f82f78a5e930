package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	handlers "yatube/internal/handler"
)

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handlers.HealthHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

// Незарегистрированный путь отдает 404.
func TestUnknownPathReturnsNotFound(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(handlers.NotFoundHandler)

	req := httptest.NewRequest(http.MethodGet, "/not_exists/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
