package services

import (
	"math"

	"dropsmob/internal/domain"
	applog "dropsmob/internal/log"

	"github.com/shopspring/decimal"
)

// CartStore receives the full cart after every mutation.
type CartStore interface {
	SaveCart(lines []domain.CartLine) error
}

// CartEngine holds the session cart: one line per product id, in the order
// products were first added.
type CartEngine struct {
	Store CartStore
	lines []domain.CartLine
}

func NewCartEngine(store CartStore, initial []domain.CartLine) *CartEngine {
	c := &CartEngine{Store: store}
	for _, l := range initial {
		if l.Quantity < 1 {
			l.Quantity = 1
		}
		if i := c.index(l.ID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

func (c *CartEngine) index(id string) int {
	for i := range c.lines {
		if c.lines[i].ID == id {
			return i
		}
	}
	return -1
}

// Add puts one more unit of p in the cart.
func (c *CartEngine) Add(p domain.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
	} else {
		c.lines = append(c.lines, domain.CartLine{Product: p, Quantity: 1})
	}
	c.flush()
}

// BuyNow makes sure p is in the cart without bumping an existing line.
// It reports whether a new line was added.
func (c *CartEngine) BuyNow(p domain.Product) bool {
	if c.index(p.ID) >= 0 {
		return false
	}
	c.lines = append(c.lines, domain.CartLine{Product: p, Quantity: 1})
	c.flush()
	return true
}

// SetQuantityDelta moves a line's quantity by delta, never below 1.
// Unknown ids are ignored.
func (c *CartEngine) SetQuantityDelta(id string, delta int) {
	i := c.index(id)
	if i < 0 {
		return
	}
	q := c.lines[i].Quantity
	if delta > 0 && q > math.MaxInt-delta {
		q = math.MaxInt
	} else {
		q += delta
	}
	c.lines[i].Quantity = max(1, q)
	c.flush()
}

// Remove drops the line for id if there is one.
func (c *CartEngine) Remove(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.flush()
}

func (c *CartEngine) Clear() {
	c.reset()
	c.flush()
}

func (c *CartEngine) reset() { c.lines = nil }

func (c *CartEngine) Total() decimal.Decimal {
	return domain.LinesTotal(c.lines)
}

// Lines returns a copy the caller may keep or modify.
func (c *CartEngine) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CartEngine) Count() int { return len(c.lines) }

func (c *CartEngine) Quantity(id string) int {
	if i := c.index(id); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// flush writes the cart through to storage. Failures are logged only; the
// in-memory cart stays authoritative.
func (c *CartEngine) flush() {
	if c.Store == nil {
		return
	}
	if err := c.Store.SaveCart(c.Lines()); err != nil {
		applog.Error(nil, "persist.cart.fail", err, map[string]any{"lines": len(c.lines)})
	}
}
