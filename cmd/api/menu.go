package main

import "net/http"

// getMenuHandler godoc
//
//	@Summary		Get the menu
//	@Description	Lists all catalog items with their add-on definitions
//	@Tags			menu
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		502	{object}	map[string]string
//	@Router			/menu [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.storefront.Menu(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getPopularMenuHandler godoc
//
//	@Summary		Get popular items
//	@Description	Lists the items featured on the home page
//	@Tags			menu
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		502	{object}	map[string]string
//	@Router			/menu/popular [get]
func (app *application) getPopularMenuHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.storefront.PopularItems(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}
