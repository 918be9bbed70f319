package handlers

import "github.com/gofiber/fiber/v2"

// Mount registers the shopper API and the operator surface on app.
func (d *Deps) Mount(app fiber.Router) {
	api := app.Group("/api/v1")

	// Catalog
	api.Get("/categories", d.CatalogHandler.Categories)
	api.Get("/catalog", d.CatalogHandler.List)
	api.Get("/products/:id", d.CatalogHandler.Detail)

	// Cart
	api.Get("/cart", d.CartHandler.View)
	api.Post("/cart", d.CartHandler.Add)
	api.Post("/cart/buy-now", d.CartHandler.BuyNow)
	api.Post("/cart/:id/quantity", d.CartHandler.Adjust)
	api.Delete("/cart/:id", d.CartHandler.Remove)

	// Checkout & orders
	api.Get("/checkout", d.OrderHandler.Checkout)
	api.Post("/checkout", d.OrderHandler.Place)
	api.Get("/orders", d.OrderHandler.History)
	api.Get("/orders/:id", d.OrderHandler.View)

	// Navigation
	api.Get("/session", d.SessionHandler.Get)
	api.Post("/session/home", d.SessionHandler.Home)
	api.Post("/session/view", d.SessionHandler.Navigate)
	api.Get("/support-link", d.SessionHandler.SupportLink)

	// Operator
	admin := app.Group("/admin")
	admin.Get("/", d.AdminHandler.Dashboard)
	admin.Get("/orders", d.AdminHandler.OrdersPage)
	admin.Get("/orders.csv", d.AdminHandler.ExportCSV)
	admin.Post("/orders/:id/status", d.AdminHandler.UpdateOrderStatus)
}

// NotFound is the catch-all mounted after every route.
func NotFound(c *fiber.Ctx) error {
	return fiber.ErrNotFound
}
