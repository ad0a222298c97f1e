package admin

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL)
	{
		admin.Post("/groups", adminCreateGroup)
		admin.Put("/groups/:groupId", adminEditGroup)
		admin.Delete("/groups/:groupId", adminDeleteGroup)
		admin.Post("/cache/flush", adminFlushPageCache)
	}
}
