package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"yatube/internal/forms"
	"yatube/internal/models"
	"yatube/internal/pagination"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateSessionToken(tokenString string) (*models.User, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID string, form *forms.PostForm) (*models.Post, forms.FieldErrors, error) {
	args := m.Called(ctx, authorID, form)

	var post *models.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*models.Post)
	}

	var fieldErrors forms.FieldErrors
	if args.Get(1) != nil {
		fieldErrors = args.Get(1).(forms.FieldErrors)
	}

	return post, fieldErrors, args.Error(2)
}

func (m *MockPostService) UpdatePost(ctx context.Context, form *forms.PostForm) (*models.Post, forms.FieldErrors, error) {
	args := m.Called(ctx, form)

	var post *models.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*models.Post)
	}

	var fieldErrors forms.FieldErrors
	if args.Get(1) != nil {
		fieldErrors = args.Get(1).(forms.FieldErrors)
	}

	return post, fieldErrors, args.Error(2)
}

func (m *MockPostService) GroupSlugFor(ctx context.Context, post *models.Post) (string, error) {
	args := m.Called(ctx, post)
	return args.String(0), args.Error(1)
}

func (m *MockPostService) AddImage(ctx context.Context, postID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	args := m.Called(ctx, postID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockPostService) DeleteImage(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) Index(ctx context.Context, pageNumber int) (*pagination.Page, error) {
	args := m.Called(ctx, pageNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pagination.Page), args.Error(1)
}

func (m *MockFeedService) GroupFeed(ctx context.Context, slug string, pageNumber int) (*models.Group, *pagination.Page, error) {
	args := m.Called(ctx, slug, pageNumber)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Group), args.Get(1).(*pagination.Page), args.Error(2)
}

func (m *MockFeedService) ProfileFeed(ctx context.Context, username string, pageNumber int) (*models.User, *pagination.Page, error) {
	args := m.Called(ctx, username, pageNumber)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).(*pagination.Page), args.Error(2)
}

func (m *MockFeedService) PostDetail(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByGroup(ctx context.Context, groupID string) ([]models.Post, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}
