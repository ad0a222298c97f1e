package services

import (
	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/models"
)

func ListGroup(take int, offset int) ([]models.Group, error) {
	if take > 100 {
		take = 100
	}

	var groups []models.Group
	err := database.C.Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("slug = ?", slug).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

// GetGroupWithID uses a placeholder condition on purpose: a struct condition
// drops the zero value, and id 0 must read as not-found, never as a match
// for whichever group sorts first.
func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("id = ?", id).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(slug, title, description string) (models.Group, error) {
	group := models.Group{
		Slug:        slug,
		Title:       title,
		Description: description,
	}

	err := database.C.Save(&group).Error

	return group, err
}

func EditGroup(group models.Group, slug, title, description string) (models.Group, error) {
	group.Slug = slug
	group.Title = title
	group.Description = description

	err := database.C.Save(&group).Error

	return group, err
}

// DeleteGroup removes the group; the SET NULL constraint leaves its posts
// in place with an empty group reference.
func DeleteGroup(group models.Group) error {
	return database.C.Delete(&group).Error
}
