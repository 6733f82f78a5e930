package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"yatube/internal/config"
	"yatube/internal/forms"
	"yatube/internal/models"
	"yatube/internal/repository"
	"yatube/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID string, form *forms.PostForm) (*models.Post, forms.FieldErrors, error)
	UpdatePost(ctx context.Context, form *forms.PostForm) (*models.Post, forms.FieldErrors, error)
	GroupSlugFor(ctx context.Context, post *models.Post) (string, error)
	AddImage(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Image, error)
	DeleteImage(ctx context.Context, imageID string) error
}

type postService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	imageRepo repository.ImageRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository,
	imageRepo repository.ImageRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		imageRepo: imageRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

// CreatePost валидирует форму и сохраняет новый пост.
// Автор поста - всегда текущий пользователь, это не поле формы.
func (p *postService) CreatePost(ctx context.Context, authorID string, form *forms.PostForm) (*models.Post, forms.FieldErrors, error) {
	post, fieldErrors, err := form.Validate(ctx, p.groupRepo)
	if err != nil {
		return nil, nil, err
	}
	if fieldErrors.Has() {
		return nil, fieldErrors, nil
	}

	post.AuthorID = authorID

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, nil, err
	}

	return post, nil, nil
}

// UpdatePost сохраняет изменения отредактированного поста.
// Форма обязана быть привязана к существующему посту через BindInstance,
// проверку владельца выполняет обработчик до вызова.
func (p *postService) UpdatePost(ctx context.Context, form *forms.PostForm) (*models.Post, forms.FieldErrors, error) {
	if form.Instance == nil {
		return nil, nil, fmt.Errorf("форма не привязана к посту")
	}

	post, fieldErrors, err := form.Validate(ctx, p.groupRepo)
	if err != nil {
		return nil, nil, err
	}
	if fieldErrors.Has() {
		return nil, fieldErrors, nil
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, nil, err
	}

	return post, nil, nil
}

// GroupSlugFor возвращает слаг группы поста, пустую строку для поста
// без группы. Нужен для предзаполнения формы редактирования.
func (p *postService) GroupSlugFor(ctx context.Context, post *models.Post) (string, error) {
	if post.GroupID == nil {
		return "", nil
	}

	group, err := p.groupRepo.GetGroupByID(ctx, *post.GroupID)
	if err != nil {
		return "", err
	}

	return group.Slug, nil
}

func (p *postService) AddImage(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	image := &models.Image{
		ImageID:  uuid.New().String(),
		PostID:   postID,
		ImageURL: imageURL,
	}

	err = p.imageRepo.Create(ctx, image)
	if err != nil {
		p.storage.DeleteImage(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения изображения в БД: %w", err)
	}

	return image, nil
}

func (p *postService) DeleteImage(ctx context.Context, imageID string) error {
	image, err := p.imageRepo.GetByImageID(ctx, imageID)
	if err != nil {
		return err
	}

	objectName := objectNameFromURL(image.ImageURL, p.cfg.MinIO.BucketName)
	if objectName != "" {
		if err := p.storage.DeleteImage(ctx, objectName); err != nil {
			fmt.Printf("Предупреждение: не удалось удалить из MinIO: %v\n", err)
		}
	}

	if err := p.imageRepo.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("ошибка удаления из БД: %w", err)
	}

	return nil
}

// objectNameFromURL вырезает путь объекта из публичного URL изображения.
func objectNameFromURL(imageURL, bucket string) string {
	marker := "/" + bucket + "/"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return ""
	}
	return imageURL[idx+len(marker):]
}
