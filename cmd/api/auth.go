package main

import (
	"net/http"
	"time"

	"github.com/Nagesh2809/cafe-management/internal/backend"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	// JoinDate backdates the account for loyalty demos; normally unset.
	JoinDate *time.Time `json:"join_date,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// registerHandler godoc
//
//	@Summary		Register an account
//	@Description	Creates an account on the cafe service and logs the session in
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration details"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		502		{object}	map[string]string
//	@Router			/auth/register [post]
func (app *application) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	account, err := app.storefront.Register(r.Context(), app.session(r), backend.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		JoinDate: req.JoinDate,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, account); err != nil {
		app.internalServerError(w, r, err)
	}
}

// loginHandler godoc
//
//	@Summary		Log in
//	@Description	Exchanges credentials for a session-held token and caches the account
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Router			/auth/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	account, err := app.storefront.Login(r.Context(), app.session(r), req.Email, req.Password)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, account); err != nil {
		app.internalServerError(w, r, err)
	}
}

// logoutHandler godoc
//
//	@Summary		Log out
//	@Description	Drops the session token and cached account; the cart survives
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/auth/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	app.storefront.Logout(app.session(r))

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
