package service

import (
	"context"

	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/pagination"
	"yatube/internal/repository"
)

// FeedService собирает ленты постов: общую, по группе и по автору.
// Все ленты отсортированы от новых к старым и разбиты на страницы.
type FeedService interface {
	Index(ctx context.Context, pageNumber int) (*pagination.Page, error)
	GroupFeed(ctx context.Context, slug string, pageNumber int) (*models.Group, *pagination.Page, error)
	ProfileFeed(ctx context.Context, username string, pageNumber int) (*models.User, *pagination.Page, error)
	PostDetail(ctx context.Context, postID string) (*models.Post, error)
}

type feedService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	imageRepo repository.ImageRepository
	cfg       *config.Config
}

func NewFeedService(postRepo repository.PostRepository, groupRepo repository.GroupRepository,
	userRepo repository.UserRepository, imageRepo repository.ImageRepository, cfg *config.Config) FeedService {
	return &feedService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		imageRepo: imageRepo,
		cfg:       cfg,
	}
}

func (s *feedService) Index(ctx context.Context, pageNumber int) (*pagination.Page, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return pagination.Paginate(posts, s.cfg.PageSize, pageNumber)
}

func (s *feedService) GroupFeed(ctx context.Context, slug string, pageNumber int) (*models.Group, *pagination.Page, error) {
	group, err := s.groupRepo.GetGroupBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.postRepo.ListByGroup(ctx, group.GroupID)
	if err != nil {
		return nil, nil, err
	}

	page, err := pagination.Paginate(posts, s.cfg.PageSize, pageNumber)
	if err != nil {
		return nil, nil, err
	}

	return group, page, nil
}

func (s *feedService) ProfileFeed(ctx context.Context, username string, pageNumber int) (*models.User, *pagination.Page, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, author.UserID)
	if err != nil {
		return nil, nil, err
	}

	page, err := pagination.Paginate(posts, s.cfg.PageSize, pageNumber)
	if err != nil {
		return nil, nil, err
	}

	return author, page, nil
}

func (s *feedService) PostDetail(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	images, err := s.imageRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Images = images

	return post, nil
}
