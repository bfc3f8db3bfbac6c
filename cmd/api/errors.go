package main

import (
	"errors"
	"net/http"

	"github.com/Nagesh2809/cafe-management/internal/backend"
	"github.com/Nagesh2809/cafe-management/internal/service"
)

var ErrInvalidID = errors.New("invalid ID format")

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusNotFound, "not found")
}

func (app *application) unauthorizedResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path)

	writeJsonError(w, http.StatusForbidden, "forbidden")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	writeJsonError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}

// serviceError maps service and backend failures onto responses. Upstream
// auth failures surface as-is so the frontend can re-prompt; transport
// failures collapse into a 502 (a transient, user-retryable condition per
// the error model).
func (app *application) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated),
		errors.Is(err, backend.ErrUnauthorized):
		app.unauthorizedResponse(w, r, err)

	case errors.Is(err, backend.ErrForbidden),
		errors.Is(err, service.ErrAdminsCannotOrder):
		app.forbiddenResponse(w, r)

	case errors.Is(err, backend.ErrNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrLineNotFound):
		app.notFoundError(w, r, err)

	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrUnknownAddOn),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidAddOn),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidStatus):
		app.badRequestResponse(w, r, err)

	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			app.logger.Warnw("backend rejected request", "method", r.Method, "path", r.URL.Path, "detail", apiErr.Detail)
			writeJsonError(w, apiErr.StatusCode, apiErr.Detail)
			return
		}

		app.logger.Errorw("backend unavailable", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeJsonError(w, http.StatusBadGateway, "the cafe service is unavailable, try again")
	}
}
