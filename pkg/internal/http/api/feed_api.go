package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/http/sec"
	"github.com/plumehq/plume/pkg/internal/services"
)

func homeFeed(c *fiber.Ctx) error {
	page, err := services.PaginatePosts(database.C, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"page": page,
	})
}

func listFollowedPost(c *fiber.Ctx) error {
	user, ok := sec.UserFromContext(c)
	if !ok {
		return sec.RedirectToLogin(c)
	}

	tx := services.FilterPostWithFollowed(database.C, user.ID)
	page, err := services.PaginatePosts(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"page": page,
	})
}
