package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"yatube/internal/middleware"
	"yatube/internal/models"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,150}$`)
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.Cfg.SessionDuration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Signup регистрирует пользователя и сразу открывает сессию.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		WriteJSON(w, map[string]interface{}{"form": []string{"username", "email", "password"}}, http.StatusOK)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if !usernamePattern.MatchString(username) {
		WriteError(w, "Неверный формат имени пользователя", http.StatusBadRequest)
		return
	}

	if !emailPattern.MatchString(email) {
		WriteError(w, "Неверный формат email", http.StatusBadRequest)
		return
	}

	if utf8.RuneCountInString(password) < 6 {
		WriteError(w, "Пароль должен быть не менее 6 символов", http.StatusBadRequest)
		return
	}

	req := models.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	_, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "уже существует") {
			WriteError(w, "Пользователь уже существует", http.StatusForbidden)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	_, sessionToken, err := h.AuthService.Login(r.Context(), username, password)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, sessionToken)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Login открывает сессию по имени пользователя и паролю.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		WriteJSON(w, map[string]interface{}{"form": []string{"username", "password"}}, http.StatusOK)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	if username == "" || password == "" {
		WriteError(w, "Укажите имя пользователя и пароль", http.StatusBadRequest)
		return
	}

	_, sessionToken, err := h.AuthService.Login(r.Context(), username, password)
	if err != nil {
		WriteError(w, "Неверное имя пользователя или пароль", http.StatusForbidden)
		return
	}

	h.setSessionCookie(w, sessionToken)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout закрывает сессию, затирая cookie.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
