package session

import (
	"sync"
	"time"

	"github.com/Nagesh2809/cafe-management/internal/cart"
	"github.com/Nagesh2809/cafe-management/internal/domain"
)

// Session is the server-held state for one connected client: the bearer
// token and cached account from the auth service, plus the cart. Nothing
// here is ever persisted; when the session expires the client starts over,
// exactly like a browser reload in the original storefront.
//
// Cart and auth operations are read-modify-write, so handlers hold the
// session mutex for the duration of an operation. Requests of different
// clients never contend.
type Session struct {
	ID string

	mu         sync.Mutex
	token      string
	account    *domain.Account
	cart       *cart.Cart
	lastActive time.Time
}

func newSession(id string) *Session {
	return &Session{
		ID:         id,
		cart:       cart.New(),
		lastActive: time.Now(),
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Cart returns the session's cart. Callers must hold the session lock
// while operating on it.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// Authenticate caches the token and account for the session. The cart is
// kept: logging in mid-browse must not drop selections.
func (s *Session) Authenticate(token string, account *domain.Account) {
	s.token = token
	s.account = account
}

// ClearAuth drops the token and cached account but keeps the cart.
func (s *Session) ClearAuth() {
	s.token = ""
	s.account = nil
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) Account() *domain.Account {
	return s.account
}

func (s *Session) Authenticated() bool {
	return s.token != "" && s.account != nil
}

func (s *Session) IsAdmin() bool {
	return s.account.IsAdmin()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActive = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}
