package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/http/sec"
	"github.com/plumehq/plume/pkg/internal/services"
	"github.com/rs/zerolog/log"
)

func addComment(c *fiber.Ctx) error {
	user, ok := sec.UserFromContext(c)
	if !ok {
		return sec.RedirectToLogin(c)
	}

	id, _ := c.ParamsInt("postId", 0)
	post, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// A failed validation is swallowed and the viewer lands back on the
	// detail page either way. Surfacing it is an open product question;
	// until then this mirrors the long-standing behavior.
	form := services.CommentForm{Text: c.FormValue("text")}
	if errs := services.ValidateCommentForm(form); len(errs) == 0 {
		if _, err := services.NewComment(user, post, form.Text); err != nil {
			log.Warn().Err(err).Uint("post", post.ID).Msg("An error occurred when creating comment...")
		}
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", post.ID), fiber.StatusFound)
}
