package main

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Timestamp    time.Time         `json:"timestamp"`
	LiveSessions int               `json:"live_sessions"`
	Services     map[string]string `json:"services"`
}

// healthCheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Healthcheck endpoint, includes backend reachability
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// the backend is reachable if the menu endpoint answers
	backendStatus := "ok"
	if _, err := app.backend.Menu(r.Context()); err != nil {
		backendStatus = "error"
	}

	response := HealthResponse{
		Status:       "healthy",
		Version:      version,
		Timestamp:    time.Now(),
		LiveSessions: app.sessions.Len(),
		Services: map[string]string{
			"backend": backendStatus,
		},
	}

	if backendStatus != "ok" {
		response.Status = "unhealthy"
		if err := writeJson(w, http.StatusServiceUnavailable, response); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
