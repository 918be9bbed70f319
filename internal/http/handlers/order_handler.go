package handlers

import (
	"errors"
	"strings"

	"dropsmob/internal/domain"
	applog "dropsmob/internal/log"
	"dropsmob/internal/message"
	"dropsmob/internal/services"
	"dropsmob/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Session     *services.Session
	EmolaNumber string
	EmolaName   string
}

// PaymentInstructions tells the shopper how to pay before confirming.
type PaymentInstructions struct {
	Dial        string `json:"dial"`
	Amount      string `json:"amount"`
	EmolaNumber string `json:"emola_number"`
	EmolaName   string `json:"emola_name"`
}

// GET /api/v1/checkout
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var cv CartView
	h.Session.Dispatch(func(s *services.Session) {
		_ = s.Navigate(domain.ViewCheckout)
		cv = cartView(s.Cart)
	})
	return c.JSON(fiber.Map{
		"cart": cv,
		"payment": PaymentInstructions{
			Dial:        "*898#",
			Amount:      cv.TotalLabel,
			EmolaNumber: h.EmolaNumber,
			EmolaName:   h.EmolaName,
		},
	})
}

func parseForm(c *fiber.Ctx) (domain.CustomerForm, error) {
	var f domain.CustomerForm
	if err := c.BodyParser(&f); err != nil {
		return f, err
	}
	// Fiber reuses request buffers; these strings outlive the request.
	f.Name = strings.Clone(f.Name)
	f.Phone = strings.Clone(f.Phone)
	f.Reference = strings.Clone(f.Reference)
	f.Address = strings.Clone(f.Address)
	return f, nil
}

// POST /api/v1/checkout
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	form, err := parseForm(c)
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return fail(c, fiber.StatusBadRequest, "invalid checkout form")
	}

	var res services.CheckoutResult
	h.Session.Dispatch(func(s *services.Session) {
		res, err = s.PlaceOrder(form)
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			applog.Security(c, "validation.fail", map[string]any{"field": ve.Field})
			return failValidation(c, err)
		}
		applog.Error(c, "order.place.fail", err, nil)
		return fail(c, fiber.StatusInternalServerError, "Não foi possível registar o pedido.")
	}

	applog.Audit(c, "order.place", map[string]any{
		"order_id": res.Order.ID,
		"total":    res.Order.Total.String(),
		"items":    len(res.Order.Items),
	})

	if c.Query("redirect") == "1" {
		return c.Redirect(res.Message.URI, fiber.StatusSeeOther)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":        res.Order,
		"total_label":  message.FormatMZN(res.Order.Total),
		"message":      res.Message,
		"whatsapp_url": res.Message.URI,
		"view":         domain.ViewHome,
	})
}

// GET /api/v1/orders/:id
func (h *OrderHandler) View(c *fiber.Ctx) error {
	id, ok := validate.OrderID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "Pedido não encontrado")
	}
	var (
		o   domain.Order
		err error
	)
	h.Session.Dispatch(func(s *services.Session) {
		o, err = s.Ledger.Get(id)
	})
	if err != nil {
		return fail(c, fiber.StatusNotFound, "Pedido não encontrado")
	}
	return c.JSON(o)
}

// GET /api/v1/orders
func (h *OrderHandler) History(c *fiber.Ctx) error {
	var orders []domain.Order
	h.Session.Dispatch(func(s *services.Session) {
		orders = s.Ledger.Orders()
	})
	return c.JSON(fiber.Map{"orders": orders})
}
