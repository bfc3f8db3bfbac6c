package service

import (
	"context"
	"fmt"

	"github.com/Nagesh2809/cafe-management/internal/backend"
	"github.com/Nagesh2809/cafe-management/internal/domain"
	"github.com/Nagesh2809/cafe-management/internal/session"
	"go.uber.org/zap"
)

// Admin implements the dashboard flows: catalog mutation, order listing,
// status transitions and aggregate stats. Authorization is two-layered:
// the router checks the cached role, the backend re-checks the token.
type Admin struct {
	api    backend.API
	logger *zap.SugaredLogger
}

func NewAdmin(api backend.API, logger *zap.SugaredLogger) *Admin {
	return &Admin{
		api:    api,
		logger: logger,
	}
}

func (s *Admin) CreateItem(ctx context.Context, sess *session.Session, input backend.MenuItemInput) (*domain.CatalogItem, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	item, err := s.api.CreateMenuItem(ctx, sessionToken(sess), input)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Infow("menu item created", "item_id", item.ID, "name", item.Name, "category", item.Category)

	return item, nil
}

func (s *Admin) UpdateItem(ctx context.Context, sess *session.Session, id int, input backend.MenuItemInput) (*domain.CatalogItem, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	item, err := s.api.UpdateMenuItem(ctx, sessionToken(sess), id, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	s.logger.Infow("menu item updated", "item_id", id)

	return item, nil
}

func (s *Admin) DeleteItem(ctx context.Context, sess *session.Session, id int) error {
	if err := s.api.DeleteMenuItem(ctx, sessionToken(sess), id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	s.logger.Infow("menu item deleted", "item_id", id)

	return nil
}

func (s *Admin) Orders(ctx context.Context, sess *session.Session) ([]domain.Order, error) {
	orders, err := s.api.AllOrders(ctx, sessionToken(sess))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

func (s *Admin) SetOrderStatus(ctx context.Context, sess *session.Session, orderID int, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.api.UpdateOrderStatus(ctx, sessionToken(sess), orderID, status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Infow("order status updated", "order_id", orderID, "status", status)

	return nil
}

func (s *Admin) Stats(ctx context.Context, sess *session.Session) (*domain.Stats, error) {
	stats, err := s.api.Stats(ctx, sessionToken(sess))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}

	return stats, nil
}

func sessionToken(sess *session.Session) string {
	sess.Lock()
	defer sess.Unlock()
	return sess.Token()
}

func validateItemInput(input backend.MenuItemInput) error {
	if !input.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, input.Category)
	}
	if input.Price <= 0 {
		return ErrInvalidPrice
	}

	seen := make(map[string]struct{}, len(input.AddOns))
	for _, a := range input.AddOns {
		if a.Name == "" || !a.Kind.Valid() || a.Price < 0 || a.MaxQuantity < 0 {
			return fmt.Errorf("%w: %q", ErrInvalidAddOn, a.Name)
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidAddOn, a.Name)
		}
		seen[a.Name] = struct{}{}
	}

	return nil
}
