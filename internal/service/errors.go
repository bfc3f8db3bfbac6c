package service

import "errors"

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrAdminsCannotOrder = errors.New("admins cannot place orders")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrItemNotFound      = errors.New("menu item not found")
	ErrItemUnavailable   = errors.New("menu item is not available")
	ErrUnknownAddOn      = errors.New("unknown add-on for this item")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidAddOn      = errors.New("invalid add-on definition")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrLineNotFound      = errors.New("cart line not found")
)
