package handlers

import (
	"errors"
	"strings"

	"dropsmob/internal/domain"
	"dropsmob/internal/log"
	"dropsmob/internal/services"
	"dropsmob/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
	Session *services.Session
}

// GET /api/v1/categories
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		log.Error(c, "catalog.categories.fail", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load categories")
	}
	return c.JSON(fiber.Map{"categories": append([]domain.Category{domain.CategoryAll}, cats...)})
}

// GET /api/v1/catalog?category=&q=
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	category, ok := validate.Category(c.Query("category"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "category"})
		return fail(c, fiber.StatusBadRequest, "Invalid category")
	}
	q := strings.Clone(validate.Q(c.Query("q")))

	products, err := h.Catalog.Filter(category, q)
	if err != nil {
		log.Error(c, "catalog.search.error", err, nil)
		return fail(c, fiber.StatusInternalServerError, "Could not load results. Please retry.")
	}
	var filter services.CatalogFilter
	h.Session.Dispatch(func(s *services.Session) {
		s.SetFilter(category, q)
		filter = s.Filter()
	})
	return c.JSON(fiber.Map{"filter": filter, "products": products, "count": len(products)})
}

// GET /api/v1/products/:id
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return fail(c, fiber.StatusNotFound, "This item is no longer available")
	}
	p, err := h.Catalog.GetProduct(id)
	if errors.Is(err, domain.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "This item is no longer available")
	}
	if err != nil {
		log.Error(c, "catalog.product.fail", err, map[string]any{"product": id})
		return fail(c, fiber.StatusInternalServerError, "could not load product")
	}
	return c.JSON(p)
}
