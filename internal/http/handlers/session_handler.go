package handlers

import (
	"dropsmob/internal/domain"
	applog "dropsmob/internal/log"
	"dropsmob/internal/message"
	"dropsmob/internal/services"
	"dropsmob/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	Session *services.Session
	Encoder *message.Encoder
}

type SessionState struct {
	View      domain.AppView         `json:"view"`
	Filter    services.CatalogFilter `json:"filter"`
	CartCount int                    `json:"cart_count"`
}

func (h *SessionHandler) state() SessionState {
	var st SessionState
	h.Session.Dispatch(func(s *services.Session) {
		st = SessionState{View: s.View(), Filter: s.Filter(), CartCount: s.Cart.Count()}
	})
	return st
}

// GET /api/v1/session
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.state())
}

// POST /api/v1/session/home
func (h *SessionHandler) Home(c *fiber.Ctx) error {
	h.Session.Dispatch(func(s *services.Session) { s.GoHome() })
	return c.JSON(h.state())
}

// POST /api/v1/session/view
func (h *SessionHandler) Navigate(c *fiber.Ctx) error {
	v, ok := validate.View(c.FormValue("view"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "view"})
		return fail(c, fiber.StatusBadRequest, "unknown view")
	}
	h.Session.Dispatch(func(s *services.Session) { _ = s.Navigate(v) })
	return c.JSON(h.state())
}

// GET /api/v1/support-link
func (h *SessionHandler) SupportLink(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"url": h.Encoder.SupportLink()})
}
