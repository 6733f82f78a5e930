package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	// pub_date выставляется один раз при создании
	post.PubDate = time.Now()

	query := `
		INSERT INTO posts (post_id, text, pub_date, author_id, group_id)
		VALUES (:post_id, :text, :pub_date, :author_id, :group_id)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts ORDER BY pub_date DESC`

	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID string) ([]models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts WHERE group_id = $1 ORDER BY pub_date DESC`

	err := r.db.SelectContext(ctx, &posts, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов группы: %w", err)
	}

	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	var posts []models.Post

	query := `SELECT * FROM posts WHERE author_id = $1 ORDER BY pub_date DESC`

	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

// Update меняет только text и group_id. Автор и pub_date неизменяемы,
// запрос дополнительно ограничен author_id.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			text = :text,
			group_id = :group_id
		WHERE post_id = :post_id AND author_id = :author_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", post.PostID, ErrNotFound)
	}

	return nil
}
