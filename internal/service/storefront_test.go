package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nagesh2809/cafe-management/internal/backend"
	"github.com/Nagesh2809/cafe-management/internal/domain"
	"github.com/Nagesh2809/cafe-management/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAPI struct {
	backend.API

	menu []domain.CatalogItem

	createOrderErr error
	createdOrders  []backend.OrderRequest

	token   string
	account *domain.Account
}

func (f *fakeAPI) Menu(ctx context.Context) ([]domain.CatalogItem, error) {
	return f.menu, nil
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	if f.token == "" {
		return "", backend.ErrUnauthorized
	}
	return f.token, nil
}

func (f *fakeAPI) CurrentUser(ctx context.Context, token string) (*domain.Account, error) {
	if f.account == nil {
		return nil, backend.ErrUnauthorized
	}
	return f.account, nil
}

func (f *fakeAPI) CreateOrder(ctx context.Context, token string, order backend.OrderRequest) (*domain.Order, error) {
	if f.createOrderErr != nil {
		return nil, f.createOrderErr
	}
	f.createdOrders = append(f.createdOrders, order)
	return &domain.Order{ID: 99, Status: domain.OrderPending, Subtotal: order.Subtotal, Total: order.Total}, nil
}

var testMenu = []domain.CatalogItem{
	{
		ID: 1, Name: "Classic Irani Chai", Category: domain.CategoryChai,
		Price: 30, IsAvailable: true,
		AddOns: []domain.AddOn{
			{Name: "Extra Milk", Price: 10, Kind: domain.AddOnToggle},
			{Name: "Cheese Slice", Price: 25, Kind: domain.AddOnQuantity, MaxQuantity: 2},
		},
	},
	{ID: 2, Name: "Sold Out Cake", Category: domain.CategoryBakery, Price: 200, IsAvailable: false},
}

func newTestStorefront(api backend.API) (*Storefront, *session.Session) {
	store := session.NewStore(session.Config{TTL: time.Hour}, zap.NewNop().Sugar())
	return NewStorefront(api, zap.NewNop().Sugar()), store.Create()
}

func userAccount(joinMonthsAgo int, now time.Time) *domain.Account {
	return &domain.Account{
		ID: 7, Name: "Asha", Email: "asha@chai.in",
		Role: domain.RoleUser, JoinDate: now.AddDate(0, -joinMonthsAgo, 0),
	}
}

func TestAddToCartNormalizesSelections(t *testing.T) {
	sf, sess := newTestStorefront(&fakeAPI{menu: testMenu})
	ctx := context.Background()

	line, err := sf.AddToCart(ctx, sess, 1, 1, []AddOnSelection{
		{Name: "Extra Milk", Quantity: 4}, // toggle: forced to 1
		{Name: "Cheese Slice", Quantity: 5}, // clamped to max 2
	})
	require.NoError(t, err)

	require.Len(t, line.AddOns, 2)
	byName := map[string]domain.SelectedAddOn{}
	for _, a := range line.AddOns {
		byName[a.Name] = a
	}
	assert.Equal(t, 1, byName["Extra Milk"].Quantity)
	assert.Equal(t, domain.Price(10), byName["Extra Milk"].Price)
	assert.Equal(t, 2, byName["Cheese Slice"].Quantity)
	assert.Equal(t, domain.Price(25), byName["Cheese Slice"].Price)
}

func TestAddToCartDropsZeroQuantitySelections(t *testing.T) {
	sf, sess := newTestStorefront(&fakeAPI{menu: testMenu})
	ctx := context.Background()

	// a zero-quantity selection means the add-on was not chosen, even for
	// toggles; the line must match a plain add of the same item
	line, err := sf.AddToCart(ctx, sess, 1, 1, []AddOnSelection{
		{Name: "Extra Milk", Quantity: 0},
		{Name: "Cheese Slice", Quantity: 0},
	})
	require.NoError(t, err)
	assert.Empty(t, line.AddOns)

	line, err = sf.AddToCart(ctx, sess, 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	view := sf.ViewCart(sess, time.Now())
	require.Len(t, view.Lines, 1)
	assert.Equal(t, domain.Price(60), view.Subtotal)
}

func TestAddToCartReturnsDetachedSnapshot(t *testing.T) {
	sf, sess := newTestStorefront(&fakeAPI{menu: testMenu})
	ctx := context.Background()

	first, err := sf.AddToCart(ctx, sess, 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := sf.AddToCart(ctx, sess, 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)

	// the first snapshot does not observe the later merge
	assert.Equal(t, 1, first.Quantity)
}

func TestAddToCartRejectsUnknownAddOn(t *testing.T) {
	sf, sess := newTestStorefront(&fakeAPI{menu: testMenu})

	_, err := sf.AddToCart(context.Background(), sess, 1, 1, []AddOnSelection{{Name: "Whipped Cream", Quantity: 1}})
	assert.True(t, errors.Is(err, ErrUnknownAddOn))
}

func TestAddToCartRejectsUnavailableAndUnknownItems(t *testing.T) {
	sf, sess := newTestStorefront(&fakeAPI{menu: testMenu})
	ctx := context.Background()

	_, err := sf.AddToCart(ctx, sess, 2, 1, nil)
	assert.True(t, errors.Is(err, ErrItemUnavailable))

	_, err = sf.AddToCart(ctx, sess, 999, 1, nil)
	assert.True(t, errors.Is(err, ErrItemNotFound))
}

func TestAddToCartBlocksAdmins(t *testing.T) {
	now := time.Now()
	sf, sess := newTestStorefront(&fakeAPI{menu: testMenu})

	admin := userAccount(1, now)
	admin.Role = domain.RoleAdmin
	sess.Lock()
	sess.Authenticate("tok", admin)
	sess.Unlock()

	_, err := sf.AddToCart(context.Background(), sess, 1, 1, nil)
	assert.True(t, errors.Is(err, ErrAdminsCannotOrder))
}

func TestViewCartGuestHasNoDiscount(t *testing.T) {
	sf, sess := newTestStorefront(&fakeAPI{menu: testMenu})

	_, err := sf.AddToCart(context.Background(), sess, 1, 2, []AddOnSelection{{Name: "Extra Milk", Quantity: 1}})
	require.NoError(t, err)

	view := sf.ViewCart(sess, time.Now())
	assert.Equal(t, domain.Price(80), view.Subtotal)
	assert.Nil(t, view.Loyalty)
	assert.Equal(t, domain.Price(0), view.DiscountAmount)
	assert.Equal(t, domain.Price(80), view.Total)
}

func TestViewCartAppliesLoyaltyPreview(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	sf, sess := newTestStorefront(&fakeAPI{menu: testMenu})

	sess.Lock()
	sess.Authenticate("tok", userAccount(7, now))
	sess.Unlock()

	_, err := sf.AddToCart(context.Background(), sess, 1, 2, []AddOnSelection{{Name: "Extra Milk", Quantity: 1}})
	require.NoError(t, err)

	view := sf.ViewCart(sess, now)
	require.NotNil(t, view.Loyalty)
	assert.Equal(t, "Regular", view.Loyalty.TierName)
	assert.Equal(t, domain.Price(80), view.Subtotal)
	assert.Equal(t, 5, view.DiscountPercent)
	assert.Equal(t, domain.Price(4), view.DiscountAmount)
	assert.Equal(t, domain.Price(76), view.Total)
}

func TestCheckoutSubmitsAndClearsCart(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	api := &fakeAPI{menu: testMenu}
	sf, sess := newTestStorefront(api)

	sess.Lock()
	sess.Authenticate("tok", userAccount(7, now))
	sess.Unlock()

	_, err := sf.AddToCart(context.Background(), sess, 1, 2, []AddOnSelection{{Name: "Extra Milk", Quantity: 1}})
	require.NoError(t, err)

	order, err := sf.Checkout(context.Background(), sess, now)
	require.NoError(t, err)
	assert.Equal(t, 99, order.ID)

	require.Len(t, api.createdOrders, 1)
	req := api.createdOrders[0]
	assert.Equal(t, domain.Price(80), req.Subtotal)
	assert.Equal(t, domain.Price(4), req.DiscountAmount)
	assert.Equal(t, domain.Price(76), req.Total)
	require.Len(t, req.Items, 1)
	assert.Equal(t, 1, req.Items[0].MenuItemID)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.Equal(t, domain.Price(30), req.Items[0].Price)

	sess.Lock()
	assert.Equal(t, 0, sess.Cart().Len())
	sess.Unlock()
}

func TestCheckoutFailureLeavesCartIntact(t *testing.T) {
	now := time.Now()
	api := &fakeAPI{menu: testMenu, createOrderErr: errors.New("backend down")}
	sf, sess := newTestStorefront(api)

	sess.Lock()
	sess.Authenticate("tok", userAccount(7, now))
	sess.Unlock()

	_, err := sf.AddToCart(context.Background(), sess, 1, 1, nil)
	require.NoError(t, err)

	_, err = sf.Checkout(context.Background(), sess, now)
	require.Error(t, err)

	sess.Lock()
	assert.Equal(t, 1, sess.Cart().Len())
	sess.Unlock()
}

func TestCheckoutRequiresAuthAndItems(t *testing.T) {
	now := time.Now()
	sf, sess := newTestStorefront(&fakeAPI{menu: testMenu})

	_, err := sf.Checkout(context.Background(), sess, now)
	assert.True(t, errors.Is(err, ErrNotAuthenticated))

	sess.Lock()
	sess.Authenticate("tok", userAccount(1, now))
	sess.Unlock()

	_, err = sf.Checkout(context.Background(), sess, now)
	assert.True(t, errors.Is(err, ErrEmptyCart))
}

func TestProfileComputesLoyalty(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	sf, sess := newTestStorefront(&fakeAPI{})

	_, err := sf.Profile(sess, now)
	assert.True(t, errors.Is(err, ErrNotAuthenticated))

	sess.Lock()
	sess.Authenticate("tok", userAccount(36, now))
	sess.Unlock()

	profile, err := sf.Profile(sess, now)
	require.NoError(t, err)
	assert.Equal(t, "Royal Patron", profile.Loyalty.TierName)
	assert.Equal(t, 15, profile.Loyalty.DiscountPercent)
	assert.Nil(t, profile.Loyalty.NextTierPercent)
	assert.Nil(t, profile.Loyalty.MonthsToNextTier)
}

func TestUpdateLineQuantity(t *testing.T) {
	sf, sess := newTestStorefront(&fakeAPI{menu: testMenu})

	line, err := sf.AddToCart(context.Background(), sess, 1, 2, nil)
	require.NoError(t, err)

	require.NoError(t, sf.UpdateLineQuantity(sess, line.ID, 5))
	view := sf.ViewCart(sess, time.Now())
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 5, view.Lines[0].Quantity)

	// driving quantity to zero removes the line
	require.NoError(t, sf.UpdateLineQuantity(sess, line.ID, 0))
	assert.Empty(t, sf.ViewCart(sess, time.Now()).Lines)

	assert.True(t, errors.Is(sf.UpdateLineQuantity(sess, "missing", 2), ErrLineNotFound))
}
