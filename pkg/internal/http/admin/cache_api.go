package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plumehq/plume/pkg/internal/http/pagecache"
	"github.com/plumehq/plume/pkg/internal/http/sec"
)

func adminFlushPageCache(c *fiber.Ctx) error {
	if err := sec.EnsureAdmin(c); err != nil {
		return err
	}

	if err := pagecache.Flush(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
