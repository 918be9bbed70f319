package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"dropsmob/internal/config"
	"dropsmob/internal/http/handlers"
	applog "dropsmob/internal/log"
	"dropsmob/internal/repos"
)

func main() {
	cfg := config.Load()

	applog.Init(cfg.LogFile, cfg.LogMaxSizeMB)
	defer applog.Sync()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	app := fiber.New(fiber.Config{
		Views:        handlers.NewViews(),
		ErrorHandler: handlers.ErrorHandler(cfg.StoreName),
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(handlers.RateLimiter(120, time.Minute))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg)
	deps.Mount(app)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(handlers.NotFound)

	log.Fatal(app.Listen(":" + cfg.Port))
}
