package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yatube/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func postColumns() []string {
	return []string{"post_id", "text", "pub_date", "author_id", "group_id"}
}

func TestPostRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	ctx := context.Background()

	t.Run("Успешное создание поста", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO posts").
			WithArgs(sqlmock.AnyArg(), "Тестовый пост", sqlmock.AnyArg(), "author1", nil).
			WillReturnResult(sqlmock.NewResult(1, 1))

		post := &models.Post{
			Text:     "Тестовый пост",
			AuthorID: "author1",
		}

		err := repo.Create(ctx, post)
		require.NoError(t, err)

		// идентификатор и дата публикации выставляются при создании
		assert.NotEmpty(t, post.PostID)
		assert.False(t, post.PubDate.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Создание поста с группой", func(t *testing.T) {
		groupID := "group1"

		mock.ExpectExec("INSERT INTO posts").
			WithArgs(sqlmock.AnyArg(), "Пост в группе", sqlmock.AnyArg(), "author1", "group1").
			WillReturnResult(sqlmock.NewResult(1, 1))

		post := &models.Post{
			Text:     "Пост в группе",
			AuthorID: "author1",
			GroupID:  &groupID,
		}

		err := repo.Create(ctx, post)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	ctx := context.Background()

	t.Run("Пост найден", func(t *testing.T) {
		rows := sqlmock.NewRows(postColumns()).
			AddRow("post1", "Тестовый пост", time.Now(), "author1", nil)

		mock.ExpectQuery(`SELECT \* FROM posts WHERE post_id`).
			WithArgs("post1").
			WillReturnRows(rows)

		post, err := repo.GetByID(ctx, "post1")
		require.NoError(t, err)
		assert.Equal(t, "post1", post.PostID)
		assert.Equal(t, "author1", post.AuthorID)
	})

	t.Run("Пост не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM posts WHERE post_id`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepository_Lists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	ctx := context.Background()
	now := time.Now()

	t.Run("Все посты от новых к старым", func(t *testing.T) {
		rows := sqlmock.NewRows(postColumns()).
			AddRow("post2", "Новее", now, "author1", nil).
			AddRow("post1", "Старее", now.Add(-time.Hour), "author1", nil)

		mock.ExpectQuery(`SELECT \* FROM posts ORDER BY pub_date DESC`).
			WillReturnRows(rows)

		posts, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "post2", posts[0].PostID)
	})

	t.Run("Посты группы", func(t *testing.T) {
		rows := sqlmock.NewRows(postColumns()).
			AddRow("post1", "Пост в группе", now, "author1", "group1")

		mock.ExpectQuery(`SELECT \* FROM posts WHERE group_id = \$1 ORDER BY pub_date DESC`).
			WithArgs("group1").
			WillReturnRows(rows)

		posts, err := repo.ListByGroup(ctx, "group1")
		require.NoError(t, err)
		require.Len(t, posts, 1)
	})

	t.Run("Посты автора", func(t *testing.T) {
		rows := sqlmock.NewRows(postColumns()).
			AddRow("post1", "Пост автора", now, "author1", nil)

		mock.ExpectQuery(`SELECT \* FROM posts WHERE author_id = \$1 ORDER BY pub_date DESC`).
			WithArgs("author1").
			WillReturnRows(rows)

		posts, err := repo.ListByAuthor(ctx, "author1")
		require.NoError(t, err)
		require.Len(t, posts, 1)
	})
}

func TestPostRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	ctx := context.Background()

	t.Run("Автор меняет текст и группу", func(t *testing.T) {
		groupID := "group2"

		mock.ExpectExec("UPDATE posts SET").
			WithArgs("Новый текст", "group2", "post1", "author1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		post := &models.Post{
			PostID:   "post1",
			Text:     "Новый текст",
			AuthorID: "author1",
			GroupID:  &groupID,
		}

		err := repo.Update(ctx, post)
		require.NoError(t, err)
	})

	t.Run("Чужой пост не обновляется", func(t *testing.T) {
		mock.ExpectExec("UPDATE posts SET").
			WithArgs("Новый текст", nil, "post1", "intruder").
			WillReturnResult(sqlmock.NewResult(0, 0))

		post := &models.Post{
			PostID:   "post1",
			Text:     "Новый текст",
			AuthorID: "intruder",
		}

		err := repo.Update(ctx, post)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
