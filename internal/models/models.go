package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type CreateUserRequest struct {
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Password string `json:"password" db:"password"`
}

type Group struct {
	GroupID     string  `json:"groupId" db:"group_id"`
	Title       string  `json:"title" db:"title"`
	Slug        string  `json:"slug" db:"slug"`
	Description *string `json:"description" db:"description"`
}

type Post struct {
	PostID   string    `json:"postId" db:"post_id"`
	Text     string    `json:"text" db:"text"`
	PubDate  time.Time `json:"pubDate" db:"pub_date"`
	AuthorID string    `json:"authorId" db:"author_id"`
	GroupID  *string   `json:"groupId" db:"group_id"`
	Images   []Image   `json:"images,omitempty" db:"-"`
}

type Image struct {
	ImageID   string    `json:"imageId" db:"image_id"`
	PostID    string    `json:"postId" db:"post_id"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
