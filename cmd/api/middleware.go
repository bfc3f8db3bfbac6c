package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/Nagesh2809/cafe-management/internal/session"
)

type contextKey string

const sessionCtxKey contextKey = "session"

const (
	sessionCookie = "session_id"
	sessionHeader = "X-Session-ID"
)

// sessionMiddleware attaches the caller's session, creating one lazily.
// The ID travels as a cookie for browsers and as a header for API
// clients; the header wins when both are present.
func (app *application) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(sessionHeader)
		if id == "" {
			if cookie, err := r.Cookie(sessionCookie); err == nil {
				id = cookie.Value
			}
		}

		sess, ok := app.sessions.Get(id)
		if !ok {
			sess = app.sessions.Create()

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(sessionHeader, sess.ID)
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) session(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionCtxKey).(*session.Session)
	return sess
}

func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := app.session(r)

		sess.Lock()
		authed := sess.Authenticated()
		sess.Unlock()

		if !authed {
			app.unauthorizedResponse(w, r, errors.New("no authenticated session"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := app.session(r)

		sess.Lock()
		admin := sess.IsAdmin()
		sess.Unlock()

		if !admin {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) rateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
