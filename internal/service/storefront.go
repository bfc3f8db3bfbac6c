package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Nagesh2809/cafe-management/internal/backend"
	"github.com/Nagesh2809/cafe-management/internal/cart"
	"github.com/Nagesh2809/cafe-management/internal/domain"
	"github.com/Nagesh2809/cafe-management/internal/loyalty"
	"github.com/Nagesh2809/cafe-management/internal/session"
	"go.uber.org/zap"
)

// Storefront implements the customer-facing flows: browsing, auth, cart
// customization, loyalty pricing and checkout. All durable records stay
// with the backend; the service composes the session-local cart and the
// loyalty calculator on top of it.
type Storefront struct {
	api    backend.API
	logger *zap.SugaredLogger
}

func NewStorefront(api backend.API, logger *zap.SugaredLogger) *Storefront {
	return &Storefront{
		api:    api,
		logger: logger,
	}
}

// AddOnSelection is a customer's pick in an "add to cart" request. Prices
// are never taken from the client; they are resolved from the catalog.
type AddOnSelection struct {
	Name     string
	Quantity int
}

type LineView struct {
	ID        string                 `json:"id"`
	Item      domain.CatalogItem     `json:"item"`
	Quantity  int                    `json:"quantity"`
	AddOns    []domain.SelectedAddOn `json:"add_ons,omitempty"`
	UnitPrice domain.Price           `json:"unit_price"`
	Subtotal  domain.Price           `json:"subtotal"`
}

type CartView struct {
	Lines           []LineView      `json:"lines"`
	Subtotal        domain.Price    `json:"subtotal"`
	Loyalty         *loyalty.Status `json:"loyalty,omitempty"`
	DiscountPercent int             `json:"discount_percent"`
	DiscountAmount  domain.Price    `json:"discount_amount"`
	Total           domain.Price    `json:"total"`
}

type Profile struct {
	Account *domain.Account `json:"account"`
	Loyalty loyalty.Status  `json:"loyalty"`
}

func (s *Storefront) Login(ctx context.Context, sess *session.Session, email, password string) (*domain.Account, error) {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	account, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	sess.Lock()
	sess.Authenticate(token, account)
	sess.Unlock()

	s.logger.Infow("session authenticated", "session_id", sess.ID, "account_id", account.ID, "role", account.Role)

	return account, nil
}

// Register creates the account upstream and then logs the session in with
// the same credentials, mirroring the storefront's auto-login flow.
func (s *Storefront) Register(ctx context.Context, sess *session.Session, req backend.RegisterRequest) (*domain.Account, error) {
	if _, err := s.api.Register(ctx, req); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.Login(ctx, sess, req.Email, req.Password)
}

func (s *Storefront) Logout(sess *session.Session) {
	sess.Lock()
	sess.ClearAuth()
	sess.Unlock()

	s.logger.Infow("session logged out", "session_id", sess.ID)
}

func (s *Storefront) Profile(sess *session.Session, now time.Time) (*Profile, error) {
	sess.Lock()
	defer sess.Unlock()

	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	account := sess.Account()

	return &Profile{
		Account: account,
		Loyalty: loyalty.Calculate(account.JoinDate, now),
	}, nil
}

func (s *Storefront) Menu(ctx context.Context) ([]domain.CatalogItem, error) {
	items, err := s.api.Menu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}

	return items, nil
}

func (s *Storefront) PopularItems(ctx context.Context) ([]domain.CatalogItem, error) {
	items, err := s.api.PopularMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch popular items: %w", err)
	}

	return items, nil
}

// AddToCart resolves the item from the live catalog, validates the add-on
// selections against the item's definitions and merges the configuration
// into the session cart. Toggle add-ons are normalized to quantity 1 and
// counted add-ons are clamped to their declared maximum, so the engine
// only ever sees one selection shape. The returned view is a snapshot
// taken under the session lock; the live line may keep changing after.
func (s *Storefront) AddToCart(ctx context.Context, sess *session.Session, itemID, quantity int, selections []AddOnSelection) (*LineView, error) {
	items, err := s.api.Menu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}

	item, ok := findItem(items, itemID)
	if !ok {
		return nil, ErrItemNotFound
	}
	if !item.IsAvailable {
		return nil, ErrItemUnavailable
	}

	addOns, err := resolveSelections(item, selections)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Authenticated() && sess.IsAdmin() {
		return nil, ErrAdminsCannotOrder
	}

	line := sess.Cart().Add(item, quantity, addOns)
	view := lineView(line)

	s.logger.Infow("added to cart",
		"session_id", sess.ID, "item_id", item.ID, "quantity", quantity, "line_id", line.ID)

	return &view, nil
}

func (s *Storefront) UpdateLineQuantity(sess *session.Session, lineID string, quantity int) error {
	sess.Lock()
	defer sess.Unlock()

	if _, ok := sess.Cart().Find(lineID); !ok {
		return ErrLineNotFound
	}

	sess.Cart().SetQuantity(lineID, quantity)
	return nil
}

func (s *Storefront) RemoveLine(sess *session.Session, lineID string) {
	sess.Lock()
	sess.Cart().Remove(lineID)
	sess.Unlock()
}

func (s *Storefront) ClearCart(sess *session.Session) {
	sess.Lock()
	sess.Cart().Clear()
	sess.Unlock()
}

// ViewCart prices the cart, applying the loyalty discount preview when the
// session is authenticated. Guests see a zero discount.
func (s *Storefront) ViewCart(sess *session.Session, now time.Time) *CartView {
	sess.Lock()
	defer sess.Unlock()

	return s.priceCart(sess, now)
}

// Checkout submits the session cart as an order. The cart is cleared only
// after the backend accepts the order; any failure leaves the session
// untouched so the customer can retry.
func (s *Storefront) Checkout(ctx context.Context, sess *session.Session, now time.Time) (*domain.Order, error) {
	sess.Lock()

	if !sess.Authenticated() {
		sess.Unlock()
		return nil, ErrNotAuthenticated
	}
	if sess.IsAdmin() {
		sess.Unlock()
		return nil, ErrAdminsCannotOrder
	}
	if sess.Cart().Len() == 0 {
		sess.Unlock()
		return nil, ErrEmptyCart
	}

	token := sess.Token()
	view := s.priceCart(sess, now)

	req := backend.OrderRequest{
		Subtotal:       view.Subtotal,
		DiscountAmount: view.DiscountAmount,
		Total:          view.Total,
		Items:          make([]backend.OrderItemRequest, 0, len(view.Lines)),
	}
	for _, line := range view.Lines {
		req.Items = append(req.Items, backend.OrderItemRequest{
			MenuItemID:      line.Item.ID,
			Name:            line.Item.Name,
			Quantity:        line.Quantity,
			Price:           line.Item.Price,
			SelectedOptions: line.AddOns,
		})
	}

	// no lock across the network call; the snapshot above is complete
	sess.Unlock()

	order, err := s.api.CreateOrder(ctx, token, req)
	if err != nil {
		s.logger.Errorw("checkout failed", "session_id", sess.ID, "error", err)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	sess.Lock()
	sess.Cart().Clear()
	sess.Unlock()

	s.logger.Infow("order placed",
		"session_id", sess.ID, "order_id", order.ID,
		"subtotal", req.Subtotal, "discount", req.DiscountAmount, "total", req.Total)

	return order, nil
}

func (s *Storefront) MyOrders(ctx context.Context, sess *session.Session) ([]domain.Order, error) {
	sess.Lock()
	if !sess.Authenticated() {
		sess.Unlock()
		return nil, ErrNotAuthenticated
	}
	token := sess.Token()
	sess.Unlock()

	orders, err := s.api.MyOrders(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

// priceCart expects the session lock to be held.
func (s *Storefront) priceCart(sess *session.Session, now time.Time) *CartView {
	view := &CartView{Lines: []LineView{}}

	for _, line := range sess.Cart().Lines() {
		view.Lines = append(view.Lines, lineView(line))
	}

	view.Subtotal = sess.Cart().Total()

	if sess.Authenticated() {
		status := loyalty.Calculate(sess.Account().JoinDate, now)
		view.Loyalty = &status
		view.DiscountPercent = status.DiscountPercent
	}

	view.DiscountAmount = loyalty.DiscountAmount(view.Subtotal, view.DiscountPercent)
	view.Total = view.Subtotal - view.DiscountAmount

	return view
}

// lineView copies the line into a detached value; callers can hand it to
// an encoder after the session lock is released.
func lineView(line *cart.Line) LineView {
	addOns := make([]domain.SelectedAddOn, len(line.AddOns))
	copy(addOns, line.AddOns)
	if len(addOns) == 0 {
		addOns = nil
	}

	return LineView{
		ID:        line.ID,
		Item:      line.Item,
		Quantity:  line.Quantity,
		AddOns:    addOns,
		UnitPrice: line.UnitPrice(),
		Subtotal:  line.Subtotal(),
	}
}

func findItem(items []domain.CatalogItem, id int) (domain.CatalogItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.CatalogItem{}, false
}

func resolveSelections(item domain.CatalogItem, selections []AddOnSelection) ([]domain.SelectedAddOn, error) {
	if len(selections) == 0 {
		return nil, nil
	}

	out := make([]domain.SelectedAddOn, 0, len(selections))
	for _, sel := range selections {
		def, ok := item.FindAddOn(sel.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAddOn, sel.Name)
		}

		// quantity 0 means absent, for toggles as much as for counters
		if sel.Quantity < 1 {
			continue
		}

		qty := sel.Quantity
		if def.Kind == domain.AddOnToggle {
			qty = 1
		}
		if def.Kind == domain.AddOnQuantity && def.MaxQuantity > 0 && qty > def.MaxQuantity {
			qty = def.MaxQuantity
		}

		out = append(out, domain.SelectedAddOn{
			Name:     def.Name,
			Price:    def.Price,
			Quantity: qty,
		})
	}

	return out, nil
}
