package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var validate = validator.New()

// FieldError is one failed field constraint, decoupled from the request
// layer so handlers can redisplay forms with inline errors.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type PostForm struct {
	Text        string   `json:"text"`
	GroupID     *uint    `json:"group_id"`
	ImageName   string   `json:"image_name"`
	Attachments []string `json:"attachments"`
}

type CommentForm struct {
	Text string `json:"text"`
}

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

func MaxPostLength() int {
	length := viper.GetInt("content.max_post_length")
	if length <= 0 {
		length = 30
	}
	return length
}

func ValidatePostForm(form PostForm) []FieldError {
	var errs []FieldError

	if err := validate.Var(form.Text, fmt.Sprintf("required,max=%d", MaxPostLength())); err != nil {
		errs = append(errs, FieldError{
			Field:   "text",
			Message: fmt.Sprintf("text is required and must be at most %d characters", MaxPostLength()),
		})
	}

	if len(form.ImageName) > 0 {
		ext := strings.ToLower(filepath.Ext(form.ImageName))
		if !lo.Contains(allowedImageExtensions, ext) {
			errs = append(errs, FieldError{
				Field:   "image",
				Message: fmt.Sprintf("image must be one of %s", strings.Join(allowedImageExtensions, ", ")),
			})
		}
	}

	for _, name := range form.Attachments {
		ext := strings.ToLower(filepath.Ext(name))
		if !lo.Contains(allowedImageExtensions, ext) {
			errs = append(errs, FieldError{
				Field:   "attachments",
				Message: fmt.Sprintf("attachments must be one of %s", strings.Join(allowedImageExtensions, ", ")),
			})
			break
		}
	}

	return errs
}

func ValidateCommentForm(form CommentForm) []FieldError {
	if err := validate.Var(form.Text, "required"); err != nil {
		return []FieldError{{Field: "text", Message: "text is required"}}
	}
	return nil
}
