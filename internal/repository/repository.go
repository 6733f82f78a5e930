package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

// ErrNotFound возвращается, когда запрошенной записи нет в БД.
var ErrNotFound = errors.New("запись не найдена")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type GroupRepository interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroupBySlug(ctx context.Context, slug string) (*models.Group, error)
	GetGroupByID(ctx context.Context, groupID string) (*models.Group, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	DeleteGroup(ctx context.Context, groupID string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByGroup(ctx context.Context, groupID string) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByImageID(ctx context.Context, imageID string) (*models.Image, error)
	GetByPostID(ctx context.Context, postID string) ([]models.Image, error)
	Delete(ctx context.Context, imageID string) error
}

type Repository struct {
	User  UserRepository
	Group GroupRepository
	Post  PostRepository
	Image ImageRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:  NewUserRepository(db),
		Group: NewGroupRepository(db),
		Post:  NewPostRepository(db),
		Image: NewImageRepository(db),
	}
}
