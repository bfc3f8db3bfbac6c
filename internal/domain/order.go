package domain

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	Price           Price           `json:"price"`
	SelectedOptions []SelectedAddOn `json:"selected_options,omitempty"`
}

type Order struct {
	ID             int         `json:"id"`
	UserID         int         `json:"user_id,omitempty"`
	Date           time.Time   `json:"date"`
	Status         OrderStatus `json:"status"`
	Subtotal       Price       `json:"subtotal"`
	DiscountAmount Price       `json:"discount_amount"`
	Total          Price       `json:"total"`
	Items          []OrderItem `json:"items"`
}

// Stats is the admin dashboard aggregate returned by the backend.
type Stats struct {
	Revenue      Price        `json:"revenue"`
	Orders       int          `json:"orders"`
	Users        int          `json:"users"`
	SalesHistory []SalesPoint `json:"sales_history"`
}

type SalesPoint struct {
	Date  string `json:"date"`
	Sales Price  `json:"sales"`
}
