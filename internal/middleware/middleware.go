package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"yatube/internal/service"
)

// SessionCookieName - cookie с токеном сессии пользователя.
const SessionCookieName = "session"

// LoginURL - куда отправляются неаутентифицированные запросы на запись.
const LoginURL = "/auth/login/"

type Middleware func(http.Handler) http.Handler

// SessionAuthMiddleware разбирает cookie сессии и кладет данные
// пользователя в контекст. Анонимные запросы проходят дальше как есть,
// решение о доступе принимает LoginRequired или сам обработчик.
func SessionAuthMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := authService.ValidateSessionToken(cookie.Value)
			if err != nil {
				// битая или просроченная сессия приравнивается к анонимной
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, "userID", user.UserID)
			ctx = context.WithValue(ctx, "username", user.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoginRequired отправляет анонимный запрос на страницу входа,
// не обрабатывая его.
func LoginRequired(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value("userID").(string)
		if !ok || userID == "" {
			http.Redirect(w, r, LoginURL, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.RequestURI, time.Since(start))
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
