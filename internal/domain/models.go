package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryShirts     Category = "Camisetas"
	CategoryAppliances Category = "Eletrodomésticos"

	// CategoryAll is the catalog filter value matching every category.
	CategoryAll Category = "Todos"
)

// Categories lists the catalog categories in display order.
func Categories() []Category {
	return []Category{CategoryShirts, CategoryAppliances}
}

type Product struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description string          `json:"description" db:"description"`
	Image       string          `json:"image" db:"image"`
	Category    Category        `json:"category" db:"category"`
	Featured    bool            `json:"featured,omitempty" db:"featured"`
}

// CartLine is a product plus the quantity held in the cart. Quantity is always >= 1.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LinesTotal sums price*quantity over lines.
func LinesTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pendente"
	StatusPaid      OrderStatus = "Pago"
	StatusShipping  OrderStatus = "Em entrega"
	StatusCompleted OrderStatus = "Concluído"
)

// Statuses lists every order status in operator display order.
func Statuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusPaid, StatusShipping, StatusCompleted}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipping, StatusCompleted:
		return true
	}
	return false
}

// Order is frozen at creation; only Status changes afterwards.
type Order struct {
	ID           string          `json:"id"`
	Items        []CartLine      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CustomerName string          `json:"customerName"`
	EmolaNumber  string          `json:"emolaNumber"`
	Reference    string          `json:"reference"`
	Status       OrderStatus     `json:"status"`
	Date         time.Time       `json:"date"`
}

// CustomerForm is what the shopper fills in at checkout. Address is optional.
type CustomerForm struct {
	Name      string `json:"name" form:"name"`
	Phone     string `json:"phone" form:"phone"`
	Reference string `json:"reference" form:"reference"`
	Address   string `json:"address" form:"address"`
}

// AppView is the screen the session is currently showing.
type AppView string

const (
	ViewHome     AppView = "home"
	ViewCart     AppView = "cart"
	ViewCheckout AppView = "checkout"
	ViewAdmin    AppView = "admin"
	ViewAccount  AppView = "account"
)

func (v AppView) Valid() bool {
	switch v {
	case ViewHome, ViewCart, ViewCheckout, ViewAdmin, ViewAccount:
		return true
	}
	return false
}
