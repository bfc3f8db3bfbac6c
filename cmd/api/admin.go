package main

import (
	"net/http"
	"strconv"

	"github.com/Nagesh2809/cafe-management/internal/backend"
	"github.com/Nagesh2809/cafe-management/internal/domain"
	"github.com/go-chi/chi"
)

type MenuItemRequest struct {
	Name            string          `json:"name" validate:"required,max=120"`
	Category        domain.Category `json:"category" validate:"required"`
	Price           domain.Price    `json:"price" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	LongDescription string          `json:"long_description"`
	Ingredients     []string        `json:"ingredients"`
	Image           string          `json:"image"`
	AddOns          []domain.AddOn  `json:"add_ons"`
	IsPopular       bool            `json:"is_popular"`
	IsAvailable     bool            `json:"is_available"`
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required,oneof=Pending Processing Completed Cancelled"`
}

func (req MenuItemRequest) toInput() backend.MenuItemInput {
	return backend.MenuItemInput{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Ingredients:     req.Ingredients,
		Image:           req.Image,
		AddOns:          req.AddOns,
		IsPopular:       req.IsPopular,
		IsAvailable:     req.IsAvailable,
	}
}

// createMenuItemHandler godoc
//
//	@Summary		Create a menu item
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MenuItemRequest	true	"Menu item"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Router			/admin/menu [post]
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req MenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.admin.CreateItem(r.Context(), app.session(r), req.toInput())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMenuItemHandler godoc
//
//	@Summary		Update a menu item
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			item_id	path		int				true	"Item ID"
//	@Param			request	body		MenuItemRequest	true	"Menu item"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/admin/menu/{item_id} [put]
func (app *application) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "item_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req MenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.admin.UpdateItem(r.Context(), app.session(r), itemID, req.toInput())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMenuItemHandler godoc
//
//	@Summary		Delete a menu item
//	@Tags			admin
//	@Produce		json
//	@Param			item_id	path		int	true	"Item ID"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		404		{object}	map[string]string
//	@Router			/admin/menu/{item_id} [delete]
func (app *application) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "item_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.admin.DeleteItem(r.Context(), app.session(r), itemID); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getAllOrdersHandler godoc
//
//	@Summary		List all orders
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		403	{object}	map[string]string
//	@Router			/admin/orders [get]
func (app *application) getAllOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.admin.Orders(r.Context(), app.session(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOrderStatusHandler godoc
//
//	@Summary		Update an order's status
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		int							true	"Order ID"
//	@Param			request		body		UpdateOrderStatusRequest	true	"New status"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/orders/{order_id}/status [put]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "order_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateOrderStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.admin.SetOrderStatus(r.Context(), app.session(r), orderID, req.Status); err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "status updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getStatsHandler godoc
//
//	@Summary		Dashboard stats
//	@Description	Aggregate revenue, order and user counts with a sales time series
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		403	{object}	map[string]string
//	@Router			/admin/stats [get]
func (app *application) getStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.admin.Stats(r.Context(), app.session(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, stats); err != nil {
		app.internalServerError(w, r, err)
	}
}
