package services_test

import (
	"github.com/shopspring/decimal"

	"dropsmob/internal/domain"
	"dropsmob/internal/message"
)

// memStore records every write so tests can assert on persistence order.
type memStore struct {
	events []string
	carts  [][]domain.CartLine
	orders [][]domain.Order

	initialCart   []domain.CartLine
	initialOrders []domain.Order

	failCart   error
	failOrders error
}

func (m *memStore) SaveCart(lines []domain.CartLine) error {
	m.events = append(m.events, "cart")
	if m.failCart != nil {
		return m.failCart
	}
	m.carts = append(m.carts, lines)
	return nil
}

func (m *memStore) SaveOrders(orders []domain.Order) error {
	m.events = append(m.events, "orders")
	if m.failOrders != nil {
		return m.failOrders
	}
	m.orders = append(m.orders, orders)
	return nil
}

func (m *memStore) LoadCart() ([]domain.CartLine, error) { return m.initialCart, nil }
func (m *memStore) LoadOrders() ([]domain.Order, error)  { return m.initialOrders, nil }

func (m *memStore) lastCart() []domain.CartLine {
	if len(m.carts) == 0 {
		return nil
	}
	return m.carts[len(m.carts)-1]
}

func (m *memStore) lastOrders() []domain.Order {
	if len(m.orders) == 0 {
		return nil
	}
	return m.orders[len(m.orders)-1]
}

func product(id, name string, price int64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Category: domain.CategoryShirts,
	}
}

func validForm() domain.CustomerForm {
	return domain.CustomerForm{Name: "Ana", Phone: "841234567", Reference: "REF99"}
}

func testEncoder() *message.Encoder {
	return message.NewEncoder("DropsMob", "258840000000", "https://wa.me/")
}
