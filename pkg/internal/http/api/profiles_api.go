package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/http/sec"
	"github.com/plumehq/plume/pkg/internal/services"
	"gorm.io/gorm"
)

func listProfilePost(c *fiber.Ctx) error {
	name := c.Params("name")

	author, err := services.GetAccountWithName(name)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithAuthor(database.C, author.ID)
	page, err := services.PaginatePosts(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	followers, err := services.CountFollows(author)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"author":    author,
		"followers": followers,
		"page":      page,
	})
}

func followProfile(c *fiber.Ctx) error {
	user, ok := sec.UserFromContext(c)
	if !ok {
		return sec.RedirectToLogin(c)
	}

	author, err := services.GetAccountWithName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Duplicate follows and self-follows are silent no-ops; the redirect
	// happens either way.
	if _, err := services.FollowAccount(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", author.Name), fiber.StatusFound)
}

func unfollowProfile(c *fiber.Ctx) error {
	user, ok := sec.UserFromContext(c)
	if !ok {
		return sec.RedirectToLogin(c)
	}

	author, err := services.GetAccountWithName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAccount(user, author); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "you are not following this author")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", author.Name), fiber.StatusFound)
}
