package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"dropsmob/internal/config"
	"dropsmob/internal/http/handlers"
	"dropsmob/internal/repos"
)

func testConfig() config.Config {
	return config.Config{
		DBDSN:       ":memory:",
		StoreName:   "DropsMob",
		StorePhone:  "258840000000",
		ChatBaseURL: "https://wa.me/",
		EmolaNumber: "860000000",
		EmolaName:   "DropsMob Lda",
	}
}

// newApp wires the real routes on an in-memory store, mirroring cmd/dropsmob
// minus the network listener.
func newApp(t *testing.T, extra ...fiber.Handler) (*fiber.App, *handlers.Deps) {
	t.Helper()
	cfg := testConfig()
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	app := fiber.New(fiber.Config{
		Views:        handlers.NewViews(),
		ErrorHandler: handlers.ErrorHandler(cfg.StoreName),
	})
	app.Server().MaxRequestBodySize = 1 << 20
	app.Use(requestid.New())
	for _, h := range extra {
		app.Use(h)
	}

	deps := handlers.NewDeps(db, cfg)
	deps.Mount(app)
	app.Use(handlers.NotFound)
	return app, deps
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}

func addToCart(t *testing.T, app *fiber.App, productID string) {
	t.Helper()
	resp := postForm(t, app, "/api/v1/cart", url.Values{"productId": {productID}})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("add %s: expected 200, got %d", productID, resp.StatusCode)
	}
}

func checkoutForm() url.Values {
	return url.Values{
		"name":      {"Ana"},
		"phone":     {"841234567"},
		"reference": {"REF99"},
		"address":   {"Matola, Rua 4"},
	}
}
