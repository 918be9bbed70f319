package handlers

import (
	"strings"
	"time"

	"dropsmob/internal/domain"
	applog "dropsmob/internal/log"
	"dropsmob/internal/message"
	"dropsmob/internal/services"
	"dropsmob/internal/validate"

	"github.com/gocarina/gocsv"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler is the operator surface over the order ledger.
type AdminHandler struct {
	Session   *services.Session
	StoreName string
}

func (h *AdminHandler) orders() []domain.Order {
	var out []domain.Order
	h.Session.Dispatch(func(s *services.Session) {
		out = s.Ledger.Orders()
	})
	return out
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "admin_orders", fiber.Map{
		"StoreName": h.StoreName,
		"Orders":    h.orders(),
		"Statuses":  domain.Statuses(),
	})
}

// GET /admin/orders
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"orders": h.orders(), "statuses": domain.Statuses()})
}

type orderCSVRow struct {
	ID           string `csv:"id"`
	Date         string `csv:"date"`
	CustomerName string `csv:"customer_name"`
	EmolaNumber  string `csv:"emola_number"`
	Reference    string `csv:"reference"`
	Items        string `csv:"items"`
	Total        string `csv:"total"`
	Status       string `csv:"status"`
}

// GET /admin/orders.csv
func (h *AdminHandler) ExportCSV(c *fiber.Ctx) error {
	orders := h.orders()
	rows := make([]orderCSVRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderCSVRow{
			ID:           o.ID,
			Date:         o.Date.Format(time.RFC3339),
			CustomerName: o.CustomerName,
			EmolaNumber:  o.EmolaNumber,
			Reference:    o.Reference,
			Items:        message.ItemsSummary(o.Items),
			Total:        o.Total.StringFixed(2),
			Status:       string(o.Status),
		})
	}
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		applog.Error(c, "admin.orders.export.fail", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not export orders")
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedidos.csv"`)
	return c.SendString(out)
}

// POST /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, okID := validate.OrderID(c.Params("id"))
	status, okStatus := validate.Status(c.FormValue("status"))
	if !okID || !okStatus {
		applog.Security(c, "validation.fail", map[string]any{"field": "status"})
		return fail(c, fiber.StatusBadRequest, "missing id or status")
	}
	status = domain.OrderStatus(strings.Clone(string(status)))

	var (
		updated bool
		err     error
	)
	h.Session.Dispatch(func(s *services.Session) {
		updated, err = s.Ledger.UpdateStatus(id, status)
	})
	if err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id})
		return failValidation(c, err)
	}
	if updated {
		applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	} else {
		// Stale reference from the operator UI; nothing to change.
		applog.Info(c, "admin.orders.update.noop", map[string]any{"order_id": id})
	}

	if c.FormValue("redirect") != "" {
		return c.Redirect("/admin")
	}
	return c.JSON(fiber.Map{"order_id": id, "status": status, "updated": updated})
}
