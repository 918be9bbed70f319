package services

import (
	"math/rand"
	"strings"
	"time"

	"dropsmob/internal/domain"
	applog "dropsmob/internal/log"
)

// OrderStore receives the full ledger after every mutation, newest first.
type OrderStore interface {
	SaveOrders(orders []domain.Order) error
}

const (
	orderIDLen      = 6
	orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewOrderID returns a 6-character uppercase base-36 token. Not unique, just
// unlikely to repeat within a session.
func NewOrderID() string {
	var b [orderIDLen]byte
	for i := range b {
		b[i] = orderIDAlphabet[rand.Intn(len(orderIDAlphabet))]
	}
	return string(b[:])
}

// OrderLedger keeps every order ever placed in this session, newest first.
// Orders are never removed.
type OrderLedger struct {
	Store OrderStore
	NewID func() string
	Now   func() time.Time

	orders []domain.Order
}

func NewOrderLedger(store OrderStore, initial []domain.Order) *OrderLedger {
	l := &OrderLedger{Store: store, NewID: NewOrderID, Now: time.Now}
	l.orders = append(l.orders, initial...)
	return l
}

// ValidateForm is the required-field gate applied before any order exists.
func ValidateForm(lines []domain.CartLine, form domain.CustomerForm) error {
	switch {
	case strings.TrimSpace(form.Name) == "":
		return &domain.ValidationError{Field: "name", Message: "nome é obrigatório"}
	case strings.TrimSpace(form.Phone) == "":
		return &domain.ValidationError{Field: "phone", Message: "número e-Mola é obrigatório"}
	case strings.TrimSpace(form.Reference) == "":
		return &domain.ValidationError{Field: "reference", Message: "referência é obrigatória"}
	case len(lines) == 0:
		return &domain.ValidationError{Field: "items", Message: "carrinho vazio"}
	}
	return nil
}

// CreateFromCart snapshots lines into a new pending order, stores it at the
// head of the ledger and persists the ledger.
func (l *OrderLedger) CreateFromCart(lines []domain.CartLine, form domain.CustomerForm) (domain.Order, error) {
	o, err := l.create(lines, form)
	if err != nil {
		return domain.Order{}, err
	}
	l.flush()
	return o, nil
}

func (l *OrderLedger) create(lines []domain.CartLine, form domain.CustomerForm) (domain.Order, error) {
	if err := ValidateForm(lines, form); err != nil {
		return domain.Order{}, err
	}
	items := make([]domain.CartLine, len(lines))
	copy(items, lines)

	o := domain.Order{
		ID:           l.NewID(),
		Items:        items,
		Total:        domain.LinesTotal(items),
		CustomerName: form.Name,
		EmolaNumber:  form.Phone,
		Reference:    form.Reference,
		Status:       domain.StatusPending,
		Date:         l.Now().UTC(),
	}
	l.orders = append([]domain.Order{o}, l.orders...)
	return cloneOrder(o), nil
}

// UpdateStatus sets the status of order id to any of the known values,
// whatever the current one is. It reports false and changes nothing when
// no order has that id.
func (l *OrderLedger) UpdateStatus(id string, status domain.OrderStatus) (bool, error) {
	if !status.Valid() {
		return false, &domain.ValidationError{Field: "status", Message: "estado desconhecido: " + string(status)}
	}
	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders[i].Status = status
			l.flush()
			return true, nil
		}
	}
	return false, nil
}

func (l *OrderLedger) Get(id string) (domain.Order, error) {
	for _, o := range l.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

// Orders returns copies, newest first.
func (l *OrderLedger) Orders() []domain.Order {
	out := make([]domain.Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func (l *OrderLedger) Len() int { return len(l.orders) }

func cloneOrder(o domain.Order) domain.Order {
	items := make([]domain.CartLine, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

func (l *OrderLedger) flush() {
	if l.Store == nil {
		return
	}
	if err := l.Store.SaveOrders(l.Orders()); err != nil {
		applog.Error(nil, "persist.orders.fail", err, map[string]any{"orders": len(l.orders)})
	}
}
