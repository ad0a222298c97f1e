package http

import (
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/plumehq/plume/pkg/internal/http/admin"
	"github.com/plumehq/plume/pkg/internal/http/api"
	"github.com/plumehq/plume/pkg/internal/http/sec"
)

func NewServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Plume",
		AppName:               "Plume",
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             50 * 1024 * 1024,
	})

	app.Use(sec.ContextLoader)

	admin.MapControllers(app, "/api/admin")
	api.MapAPIs(app)

	return app
}
