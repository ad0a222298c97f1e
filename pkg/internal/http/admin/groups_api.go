package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plumehq/plume/pkg/internal/http/exts"
	"github.com/plumehq/plume/pkg/internal/http/sec"
	"github.com/plumehq/plume/pkg/internal/services"
)

// Groups are administered here only; the user-facing surface treats them
// as read-only.

func adminCreateGroup(c *fiber.Ctx) error {
	if err := sec.EnsureAdmin(c); err != nil {
		return err
	}

	var data struct {
		Slug        string `json:"slug" validate:"required,lowercase,max=100"`
		Title       string `json:"title" validate:"required,max=200"`
		Description string `json:"description" validate:"max=400"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func adminEditGroup(c *fiber.Ctx) error {
	if err := sec.EnsureAdmin(c); err != nil {
		return err
	}

	id, _ := c.ParamsInt("groupId", 0)
	group, err := services.GetGroupWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Slug        string `json:"slug" validate:"required,lowercase,max=100"`
		Title       string `json:"title" validate:"required,max=200"`
		Description string `json:"description" validate:"max=400"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err = services.EditGroup(group, data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func adminDeleteGroup(c *fiber.Ctx) error {
	if err := sec.EnsureAdmin(c); err != nil {
		return err
	}

	id, _ := c.ParamsInt("groupId", 0)
	group, err := services.GetGroupWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
