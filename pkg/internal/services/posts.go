package services

import (
	"time"

	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

// FilterPostWithFollowed narrows the listing to posts whose author the given
// account follows. This is the follow-feed join.
func FilterPostWithFollowed(tx *gorm.DB, followerID uint) *gorm.DB {
	return tx.
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.follower_id = ?", followerID)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order("published_at DESC").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

// NewPost persists a post owned by its author with a server-assigned
// publication timestamp. Resubmissions create duplicates on purpose; the
// submission flow carries no idempotency key.
func NewPost(author models.Account, item models.Post) (models.Post, error) {
	item.AuthorID = author.ID
	item.PublishedAt = time.Now()
	item.Language = DetectLanguage(item.Text)

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("post", item.ID).Uint("author", author.ID).Msg("Post published.")
	return item, nil
}

// EditPost mutates text, group, image and attachments in place. PublishedAt
// is kept as-is; only the detected language follows the new text. An empty
// image or attachment set leaves the stored one alone.
func EditPost(item models.Post, text string, groupID *uint, image string, attachments []string) (models.Post, error) {
	item.Text = text
	item.GroupID = groupID
	item.Language = DetectLanguage(text)
	if len(image) > 0 {
		item.Image = image
	}
	if len(attachments) > 0 {
		item.Attachments = datatypes.NewJSONSlice(attachments)
	}

	err := database.C.
		Model(&item).
		Updates(map[string]any{
			"text":        item.Text,
			"group_id":    item.GroupID,
			"image":       item.Image,
			"attachments": item.Attachments,
			"language":    item.Language,
		}).Error

	return item, err
}

func DeletePost(item models.Post) error {
	return database.C.Delete(&item).Error
}
