package backend

import (
	"context"
	"time"

	"github.com/Nagesh2809/cafe-management/internal/domain"
)

// API is the storefront's view of the external cafe backend. The backend
// owns all durable records: catalog, accounts and orders. Tokens are
// opaque bearer strings held only for the session.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req RegisterRequest) (*domain.Account, error)
	CurrentUser(ctx context.Context, token string) (*domain.Account, error)

	Menu(ctx context.Context) ([]domain.CatalogItem, error)
	PopularMenu(ctx context.Context) ([]domain.CatalogItem, error)
	CreateMenuItem(ctx context.Context, token string, item MenuItemInput) (*domain.CatalogItem, error)
	UpdateMenuItem(ctx context.Context, token string, id int, item MenuItemInput) (*domain.CatalogItem, error)
	DeleteMenuItem(ctx context.Context, token string, id int) error

	CreateOrder(ctx context.Context, token string, order OrderRequest) (*domain.Order, error)
	MyOrders(ctx context.Context, token string) ([]domain.Order, error)
	AllOrders(ctx context.Context, token string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID int, status domain.OrderStatus) error

	Stats(ctx context.Context, token string) (*domain.Stats, error)
}

type RegisterRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	JoinDate *time.Time `json:"join_date,omitempty"`
}

type MenuItemInput struct {
	Name            string          `json:"name"`
	Category        domain.Category `json:"category"`
	Price           domain.Price    `json:"price"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description,omitempty"`
	Ingredients     []string        `json:"ingredients"`
	Image           string          `json:"image"`
	AddOns          []domain.AddOn  `json:"add_ons"`
	IsPopular       bool            `json:"is_popular"`
	IsAvailable     bool            `json:"is_available"`
}

// OrderRequest is the checkout submission. The backend revalidates the
// pricing; it is the source of truth for the final amounts.
type OrderRequest struct {
	Subtotal       domain.Price       `json:"subtotal"`
	DiscountAmount domain.Price       `json:"discount_amount"`
	Total          domain.Price       `json:"total"`
	Items          []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	MenuItemID      int                    `json:"menu_item_id"`
	Name            string                 `json:"name"`
	Quantity        int                    `json:"quantity"`
	Price           domain.Price           `json:"price"`
	SelectedOptions []domain.SelectedAddOn `json:"selected_options"`
}
