package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"yatube/internal/models"
	"yatube/internal/pagination"
	"yatube/internal/repository"
)

type FeedResponse struct {
	PageObj *pagination.Page `json:"page_obj"`
	Group   *models.Group    `json:"group,omitempty"`
	Author  *models.User     `json:"author,omitempty"`
}

type PostDetailResponse struct {
	Post *models.Post `json:"post"`
}

// isNotFound проверяет, что ошибка означает отсутствие данных:
// неизвестный слаг, username, id или страница за пределами ленты.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, pagination.ErrPageOutOfRange)
}

// Index - главная страница, все посты от новых к старым.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	pageNumber := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	page, err := h.FeedService.Index(r.Context(), pageNumber)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, "Страница не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, FeedResponse{PageObj: page}, http.StatusOK)
}

// GroupPosts - лента постов одной группы.
func (h *Handlers) GroupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	pageNumber := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	group, page, err := h.FeedService.GroupFeed(r.Context(), slug, pageNumber)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, "Страница не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, FeedResponse{PageObj: page, Group: group}, http.StatusOK)
}

// Profile - профайл автора со всеми его постами.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	pageNumber := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	author, page, err := h.FeedService.ProfileFeed(r.Context(), username, pageNumber)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, "Страница не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, FeedResponse{PageObj: page, Author: author}, http.StatusOK)
}

// PostDetail - полная версия одного поста.
func (h *Handlers) PostDetail(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]

	post, err := h.FeedService.PostDetail(r.Context(), postID)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, PostDetailResponse{Post: post}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, MessageResponse{Message: "ok"}, http.StatusOK)
}

// NotFoundHandler отвечает на все незарегистрированные пути.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Страница не найдена", http.StatusNotFound)
}
