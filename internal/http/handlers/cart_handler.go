package handlers

import (
	"errors"

	"dropsmob/internal/domain"
	applog "dropsmob/internal/log"
	"dropsmob/internal/message"
	"dropsmob/internal/services"
	"dropsmob/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CartHandler struct {
	Catalog *services.CatalogService
	Session *services.Session
}

type CartView struct {
	Items      []domain.CartLine `json:"items"`
	Total      decimal.Decimal   `json:"total"`
	TotalLabel string            `json:"total_label"`
	Count      int               `json:"count"`
}

func cartView(cart *services.CartEngine) CartView {
	total := cart.Total()
	return CartView{
		Items:      cart.Lines(),
		Total:      total,
		TotalLabel: message.FormatMZN(total),
		Count:      cart.Count(),
	}
}

// product resolves the productId form value against the catalog. When ok is
// false the error response has already been written.
func (h *CartHandler) product(c *fiber.Ctx) (p domain.Product, ok bool, err error) {
	id, valid := validate.ID(c.FormValue("productId"))
	if !valid {
		return p, false, fail(c, fiber.StatusBadRequest, "missing productId")
	}
	p, err = h.Catalog.GetProduct(id)
	if errors.Is(err, domain.ErrNotFound) {
		return p, false, fail(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		applog.Error(c, "cart.product.lookup.fail", err, map[string]any{"product": id})
		return p, false, fail(c, fiber.StatusInternalServerError, "could not load product")
	}
	return p, true, nil
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	var cv CartView
	h.Session.Dispatch(func(s *services.Session) {
		cv = cartView(s.Cart)
	})
	return c.JSON(cv)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	p, ok, err := h.product(c)
	if !ok {
		return err
	}
	var cv CartView
	h.Session.Dispatch(func(s *services.Session) {
		s.Cart.Add(p)
		cv = cartView(s.Cart)
	})
	applog.Audit(c, "cart.add", map[string]any{"product": p.ID})
	return c.JSON(fiber.Map{"cart": cv, "message": p.Name + " adicionado ao carrinho!"})
}

func (h *CartHandler) BuyNow(c *fiber.Ctx) error {
	p, ok, err := h.product(c)
	if !ok {
		return err
	}
	var (
		cv   CartView
		view domain.AppView
	)
	h.Session.Dispatch(func(s *services.Session) {
		s.BuyNow(p)
		cv = cartView(s.Cart)
		view = s.View()
	})
	applog.Audit(c, "cart.buy_now", map[string]any{"product": p.ID})
	return c.JSON(fiber.Map{"cart": cv, "view": view})
}

func (h *CartHandler) Adjust(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	delta, ok := validate.Delta(c.FormValue("delta"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "delta"})
		return fail(c, fiber.StatusBadRequest, "invalid delta")
	}
	var cv CartView
	h.Session.Dispatch(func(s *services.Session) {
		s.Cart.SetQuantityDelta(id, delta)
		cv = cartView(s.Cart)
	})
	return c.JSON(cv)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	var cv CartView
	h.Session.Dispatch(func(s *services.Session) {
		s.Cart.Remove(id)
		cv = cartView(s.Cart)
	})
	applog.Audit(c, "cart.remove", map[string]any{"product": id})
	return c.JSON(cv)
}
