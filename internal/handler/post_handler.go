package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"yatube/internal/forms"
	"yatube/internal/middleware"
	"yatube/internal/repository"
)

type PostFormResponse struct {
	Form   map[string]interface{} `json:"form"`
	IsEdit bool                   `json:"is_edit"`
}

// PostCreate обрабатывает форму создания поста. GET отдает контекст
// пустой формы, POST валидирует и сохраняет. Анонимов сюда не пускает
// LoginRequired, но значение из контекста проверяется еще раз.
func (h *Handlers) PostCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	username, ok2 := r.Context().Value("username").(string)
	if !ok || !ok2 || userID == "" {
		http.Redirect(w, r, middleware.LoginURL, http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		form := forms.NewPostForm(url.Values{})
		WriteJSON(w, PostFormResponse{Form: form.Context(nil)}, http.StatusOK)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	form := forms.NewPostForm(r.PostForm)

	_, fieldErrors, err := h.PostService.CreatePost(r.Context(), userID, form)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if fieldErrors.Has() {
		// форма перерисовывается с введенными значениями и ошибками
		WriteJSON(w, PostFormResponse{Form: form.Context(fieldErrors)}, http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/profile/%s/", username), http.StatusFound)
}

// PostEdit обрабатывает форму редактирования. Редактировать пост может
// только его автор, чужой запрос молча уходит на страницу поста.
func (h *Handlers) PostEdit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		http.Redirect(w, r, middleware.LoginURL, http.StatusFound)
		return
	}

	postID := mux.Vars(r)["post_id"]

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	// не автор - без ошибки на страницу поста, ничего не меняя
	if post.AuthorID != userID {
		http.Redirect(w, r, fmt.Sprintf("/posts/%s/", postID), http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		groupSlug, err := h.PostService.GroupSlugFor(r.Context(), post)
		if err != nil {
			WriteError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		form := forms.NewPostForm(url.Values{})
		form.BindInstance(post, groupSlug)
		WriteJSON(w, PostFormResponse{Form: form.Context(nil), IsEdit: true}, http.StatusOK)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	form := forms.NewPostForm(r.PostForm)
	form.Instance = post

	_, fieldErrors, err := h.PostService.UpdatePost(r.Context(), form)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if fieldErrors.Has() {
		WriteJSON(w, PostFormResponse{Form: form.Context(fieldErrors), IsEdit: true}, http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%s/", postID), http.StatusFound)
}

// AddImage прикрепляет изображение к посту. Доступно только автору.
func (h *Handlers) AddImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		http.Redirect(w, r, middleware.LoginURL, http.StatusFound)
		return
	}

	postID := mux.Vars(r)["post_id"]

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if post.AuthorID != userID {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	file, handler, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	contentType := handler.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	image, err := h.PostService.AddImage(r.Context(), postID, handler.Filename, file, handler.Size)
	if err != nil {
		WriteError(w, "Ошибка загрузки изображения", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, image, http.StatusCreated)
}

// DeleteImage удаляет изображение поста. Доступно только автору.
func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		http.Redirect(w, r, middleware.LoginURL, http.StatusFound)
		return
	}

	vars := mux.Vars(r)
	postID := vars["post_id"]
	imageID := vars["image_id"]

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if post.AuthorID != userID {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	if err := h.PostService.DeleteImage(r.Context(), imageID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Изображение не найдено", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка удаления изображения", http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Изображение удалено"}, http.StatusOK)
}
