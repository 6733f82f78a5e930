package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"yatube/cmd/app"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
	"yatube/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/group/{slug}/", handler.GroupPosts).Methods(http.MethodGet)
	router.HandleFunc("/profile/{username}/", handler.Profile).Methods(http.MethodGet)
	router.HandleFunc("/posts/{post_id}/", handler.PostDetail).Methods(http.MethodGet)

	router.HandleFunc("/create/", middleware.LoginRequired(handler.PostCreate)).
		Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/posts/{post_id}/edit/", middleware.LoginRequired(handler.PostEdit)).
		Methods(http.MethodGet, http.MethodPost)

	router.HandleFunc("/posts/{post_id}/images", middleware.LoginRequired(handler.AddImage)).
		Methods(http.MethodPost)
	router.HandleFunc("/posts/{post_id}/images/{image_id}", middleware.LoginRequired(handler.DeleteImage)).
		Methods(http.MethodDelete)

	router.HandleFunc("/auth/signup/", handler.Signup).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/auth/login/", handler.Login).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/auth/logout/", handler.Logout).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(handlers.NotFoundHandler)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.SessionAuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
