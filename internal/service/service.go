package service

import (
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

type Service struct {
	Auth AuthService
	Post PostService
	Feed FeedService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth: NewAuthService(rep.User, cfg),
		Post: NewPostService(rep.Post, rep.Group, rep.Image, storage, cfg),
		Feed: NewFeedService(rep.Post, rep.Group, rep.User, rep.Image, cfg),
	}
}
