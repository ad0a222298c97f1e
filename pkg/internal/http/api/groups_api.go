package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/services"
)

func listGroup(c *fiber.Ctx) error {
	take := c.QueryInt("take", 50)
	offset := c.QueryInt("offset", 0)

	groups, err := services.ListGroup(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func listGroupPost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	group, err := services.GetGroup(slug)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithGroup(database.C, group.ID)
	page, err := services.PaginatePosts(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"group": group,
		"page":  page,
	})
}
