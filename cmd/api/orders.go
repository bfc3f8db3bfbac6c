package main

import (
	"net/http"
	"time"
)

// checkoutHandler godoc
//
//	@Summary		Place an order
//	@Description	Submits the cart with the loyalty discount applied; the cart is cleared only on success
//	@Tags			orders
//	@Produce		json
//	@Success		201	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		401	{object}	map[string]string
//	@Failure		502	{object}	map[string]string
//	@Router			/checkout [post]
func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	order, err := app.storefront.Checkout(r.Context(), app.session(r), time.Now())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrdersHandler godoc
//
//	@Summary		List my orders
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		401	{object}	map[string]string
//	@Router			/orders [get]
func (app *application) getOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.storefront.MyOrders(r.Context(), app.session(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getProfileHandler godoc
//
//	@Summary		View profile and loyalty status
//	@Description	Returns the cached account with the loyalty tier derived from the join date
//	@Tags			profile
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		401	{object}	map[string]string
//	@Router			/profile [get]
func (app *application) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := app.storefront.Profile(app.session(r), time.Now())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, profile); err != nil {
		app.internalServerError(w, r, err)
	}
}
