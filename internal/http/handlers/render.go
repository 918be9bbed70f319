package handlers

import (
	"errors"
	"net/http"

	"dropsmob/internal/domain"
	applog "dropsmob/internal/log"
	"dropsmob/internal/message"
	"dropsmob/web"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
)

// NewViews builds the template engine for the operator pages.
func NewViews() *html.Engine {
	engine := html.NewFileSystem(http.FS(web.Templates()), ".html")
	engine.AddFunc("mzn", message.FormatMZN)
	engine.AddFunc("summary", message.ItemsSummary)
	return engine
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["StoreName"]; !ok {
		data["StoreName"] = "DropsMob"
	}
	return c.Render(tmpl, data)
}

// fail writes the JSON error body used by every API route.
func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// failValidation reports a ValidationError with the offending field.
func failValidation(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Message, "field": ve.Field})
	}
	return fail(c, fiber.StatusBadRequest, err.Error())
}

// ErrorHandler logs err and shows a friendly page; internals never reach the client.
func ErrorHandler(storeName string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		applog.Error(c, "server.error", err, nil)
		code := fiber.StatusInternalServerError
		msg := "Algo correu mal. Tente novamente."
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound {
			code, msg = fe.Code, "Página não encontrada"
		}
		if rerr := render(c.Status(code), "notfound", fiber.Map{
			"StoreName": storeName,
			"Message":   msg,
		}); rerr != nil {
			return c.Status(code).SendString(msg)
		}
		return nil
	}
}
