package services

import (
	"strings"
	"sync"

	"dropsmob/internal/domain"
	applog "dropsmob/internal/log"
	"dropsmob/internal/message"
)

// SessionStore is the durable mirror of a session's cart and orders.
type SessionStore interface {
	CartStore
	OrderStore
	LoadCart() ([]domain.CartLine, error)
	LoadOrders() ([]domain.Order, error)
}

// CatalogFilter is the shopper's current catalog selection.
type CatalogFilter struct {
	Category domain.Category `json:"category"`
	Search   string          `json:"search"`
}

// Session owns all mutable shop state for the single local shopper. Its
// fields and methods are only safe inside Dispatch.
type Session struct {
	mu sync.Mutex

	Cart     *CartEngine
	Ledger   *OrderLedger
	Checkout *Checkout

	view   domain.AppView
	filter CatalogFilter
}

// LoadSession restores cart and orders from store. A slot that cannot be
// read is logged and starts empty.
func LoadSession(store SessionStore, enc *message.Encoder) *Session {
	lines, err := store.LoadCart()
	if err != nil {
		applog.Error(nil, "session.load.cart.fail", err, nil)
		lines = nil
	}
	orders, err := store.LoadOrders()
	if err != nil {
		applog.Error(nil, "session.load.orders.fail", err, nil)
		orders = nil
	}

	cart := NewCartEngine(store, lines)
	ledger := NewOrderLedger(store, orders)
	s := &Session{
		Cart:     cart,
		Ledger:   ledger,
		Checkout: NewCheckout(cart, ledger, enc),
	}
	s.GoHome()
	applog.Info(nil, "session.loaded", map[string]any{"cart_lines": cart.Count(), "orders": ledger.Len()})
	return s
}

// Dispatch runs fn as one event; events never overlap.
func (s *Session) Dispatch(fn func(s *Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

func (s *Session) View() domain.AppView { return s.view }

func (s *Session) Navigate(v domain.AppView) error {
	if !v.Valid() {
		return &domain.ValidationError{Field: "view", Message: "vista desconhecida: " + string(v)}
	}
	s.view = v
	return nil
}

// GoHome returns to the catalog with no filter applied.
func (s *Session) GoHome() {
	s.view = domain.ViewHome
	s.filter = CatalogFilter{Category: domain.CategoryAll}
}

func (s *Session) Filter() CatalogFilter { return s.filter }

func (s *Session) SetFilter(category domain.Category, search string) {
	if category == "" {
		category = domain.CategoryAll
	}
	s.filter = CatalogFilter{Category: category, Search: strings.TrimSpace(search)}
}

// BuyNow puts p in the cart if missing and moves to the cart view.
func (s *Session) BuyNow(p domain.Product) {
	s.Cart.BuyNow(p)
	s.view = domain.ViewCart
}

// PlaceOrder runs checkout and, on success, takes the shopper back home.
func (s *Session) PlaceOrder(form domain.CustomerForm) (CheckoutResult, error) {
	res, err := s.Checkout.Place(form)
	if err != nil {
		return CheckoutResult{}, err
	}
	s.GoHome()
	return res, nil
}
