package services

import (
	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/models"
)

func ListCommentsOnPost(post models.Post) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Where("post_id = ?", post.ID).
		Preload("Author").
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func NewComment(author models.Account, post models.Post, text string) (models.Comment, error) {
	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: author.ID,
	}

	err := database.C.Create(&comment).Error

	return comment, err
}
