package handlers

import (
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	PostService service.PostService
	FeedService service.FeedService
	PostRepo    repository.PostRepository
	Cfg         *config.Config
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService: service.Auth,
		PostService: service.Post,
		FeedService: service.Feed,
		PostRepo:    repo.Post,
		Cfg:         config,
	}
}
