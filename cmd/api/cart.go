package main

import (
	"net/http"
	"time"

	"github.com/Nagesh2809/cafe-management/internal/service"
	"github.com/go-chi/chi"
)

type AddCartItemRequest struct {
	ItemID   int                     `json:"item_id" validate:"required"`
	Quantity int                     `json:"quantity" validate:"min=0"`
	AddOns   []AddOnSelectionRequest `json:"add_ons" validate:"dive"`
}

type AddOnSelectionRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// getCartHandler godoc
//
//	@Summary		View the cart
//	@Description	Returns cart lines with subtotal, loyalty preview and payable total
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/cart [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	view := app.storefront.ViewCart(app.session(r), time.Now())

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// addCartItemHandler godoc
//
//	@Summary		Add an item to the cart
//	@Description	Adds a configured item; identical configurations merge into one line
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddCartItemRequest	true	"Item, quantity and add-on choices"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/cart/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	selections := make([]service.AddOnSelection, 0, len(req.AddOns))
	for _, a := range req.AddOns {
		selections = append(selections, service.AddOnSelection{Name: a.Name, Quantity: a.Quantity})
	}

	line, err := app.storefront.AddToCart(r.Context(), app.session(r), req.ItemID, req.Quantity, selections)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, line); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCartItemHandler godoc
//
//	@Summary		Update a cart line's quantity
//	@Description	Sets the quantity; zero or below removes the line
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			line_id	path		string					true	"Cart line ID"
//	@Param			request	body		UpdateCartItemRequest	true	"New quantity"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		404		{object}	map[string]string
//	@Router			/cart/items/{line_id} [put]
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "line_id")
	if lineID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.storefront.UpdateLineQuantity(app.session(r), lineID, req.Quantity); err != nil {
		app.serviceError(w, r, err)
		return
	}

	view := app.storefront.ViewCart(app.session(r), time.Now())
	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// removeCartItemHandler godoc
//
//	@Summary		Remove a cart line
//	@Description	Deletes the line; removing an absent line succeeds
//	@Tags			cart
//	@Produce		json
//	@Param			line_id	path		string	true	"Cart line ID"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/cart/items/{line_id} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "line_id")
	if lineID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	app.storefront.RemoveLine(app.session(r), lineID)

	view := app.storefront.ViewCart(app.session(r), time.Now())
	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// clearCartHandler godoc
//
//	@Summary		Clear the cart
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/cart [delete]
func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	app.storefront.ClearCart(app.session(r))

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "cart cleared"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
