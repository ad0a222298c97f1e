package api

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/http/sec"
	"github.com/plumehq/plume/pkg/internal/models"
	"github.com/plumehq/plume/pkg/internal/services"
	"github.com/spf13/viper"
	"gorm.io/datatypes"
)

func getPostDetail(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comments, err := services.ListCommentsOnPost(item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"post":     item,
		"comments": comments,
		"form":     services.CommentForm{},
	})
}

func showCreatePost(c *fiber.Ctx) error {
	if _, ok := sec.UserFromContext(c); !ok {
		return sec.RedirectToLogin(c)
	}

	return c.JSON(fiber.Map{
		"form": services.PostForm{},
	})
}

func createPost(c *fiber.Ctx) error {
	user, ok := sec.UserFromContext(c)
	if !ok {
		return sec.RedirectToLogin(c)
	}

	form, uploads, errs := bindPostForm(c)
	if len(errs) > 0 {
		// Redisplay the submission form; nothing was persisted.
		return c.JSON(fiber.Map{
			"form":   form,
			"errors": errs,
		})
	}

	item := models.Post{
		Text:    form.Text,
		GroupID: form.GroupID,
	}
	if uploads.image != nil {
		name, err := saveImage(c, uploads.image)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		item.Image = name
	}
	if len(uploads.attachments) > 0 {
		names, err := saveAttachments(c, uploads.attachments)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		item.Attachments = datatypes.NewJSONSlice(names)
	}

	if _, err := services.NewPost(user, item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", user.Name), fiber.StatusFound)
}

func showEditPost(c *fiber.Ctx) error {
	user, ok := sec.UserFromContext(c)
	if !ok {
		return sec.RedirectToLogin(c)
	}

	id, _ := c.ParamsInt("postId", 0)
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if decision := services.CheckPostEditable(item, user); !decision.Allowed {
		return c.Redirect(decision.RedirectTo, fiber.StatusFound)
	}

	return c.JSON(fiber.Map{
		"post": item,
		"form": services.PostForm{
			Text:        item.Text,
			GroupID:     item.GroupID,
			ImageName:   item.Image,
			Attachments: item.Attachments,
		},
		"is_edit": true,
	})
}

func editPost(c *fiber.Ctx) error {
	user, ok := sec.UserFromContext(c)
	if !ok {
		return sec.RedirectToLogin(c)
	}

	id, _ := c.ParamsInt("postId", 0)
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if decision := services.CheckPostEditable(item, user); !decision.Allowed {
		return c.Redirect(decision.RedirectTo, fiber.StatusFound)
	}

	form, uploads, errs := bindPostForm(c)
	if len(errs) > 0 {
		return c.JSON(fiber.Map{
			"post":    item,
			"form":    form,
			"errors":  errs,
			"is_edit": true,
		})
	}

	var imageName string
	if uploads.image != nil {
		if imageName, err = saveImage(c, uploads.image); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	var attachmentNames []string
	if len(uploads.attachments) > 0 {
		if attachmentNames, err = saveAttachments(c, uploads.attachments); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	if _, err := services.EditPost(item, form.Text, form.GroupID, imageName, attachmentNames); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
}

type postUploads struct {
	image       *multipart.FileHeader
	attachments []*multipart.FileHeader
}

// bindPostForm reads the submitted form fields and runs the field
// validators; the group reference is resolved here so an unknown group
// surfaces as a field error rather than a broken foreign key.
func bindPostForm(c *fiber.Ctx) (services.PostForm, postUploads, []services.FieldError) {
	form := services.PostForm{
		Text: c.FormValue("text"),
	}

	var errs []services.FieldError
	if raw := c.FormValue("group"); len(raw) > 0 {
		if groupID, err := strconv.ParseUint(raw, 10, 32); err != nil {
			errs = append(errs, services.FieldError{Field: "group", Message: "group must be a numeric id"})
		} else if group, err := services.GetGroupWithID(uint(groupID)); err != nil {
			errs = append(errs, services.FieldError{Field: "group", Message: "group does not exist"})
		} else {
			form.GroupID = &group.ID
		}
	}

	var uploads postUploads
	if fh, err := c.FormFile("image"); err == nil {
		uploads.image = fh
		form.ImageName = fh.Filename
	}
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		uploads.attachments = mf.File["attachments"]
		for _, fh := range uploads.attachments {
			form.Attachments = append(form.Attachments, fh.Filename)
		}
	}

	errs = append(errs, services.ValidatePostForm(form)...)
	return form, uploads, errs
}

func saveAttachments(c *fiber.Ctx, headers []*multipart.FileHeader) ([]string, error) {
	var names []string
	for _, fh := range headers {
		name, err := saveImage(c, fh)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func saveImage(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	mediaDir := filepath.Join(viper.GetString("media.path"), "posts")
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return "", fmt.Errorf("unable to prepare media directory: %v", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(fh.Filename))
	if err := c.SaveFile(fh, filepath.Join(mediaDir, name)); err != nil {
		return "", fmt.Errorf("unable to save image: %v", err)
	}

	return filepath.Join("posts", name), nil
}
