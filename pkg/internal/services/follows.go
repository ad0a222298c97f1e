package services

import (
	"errors"
	"fmt"

	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/models"
	"gorm.io/gorm"
)

func GetFollowOnAccount(follower models.Account, author models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("follower_id = ? AND author_id = ?", follower.ID, author.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow edge: %v", err)
	}
	return &follow, nil
}

// FollowAccount creates the follow edge with get-or-create semantics: a
// duplicate request is a no-op, never an error. Following yourself is also
// a silent no-op. The returned flag reports whether an edge was created.
func FollowAccount(follower models.Account, author models.Account) (bool, error) {
	if follower.ID == author.ID {
		return false, nil
	}

	if follow, err := GetFollowOnAccount(follower, author); err != nil {
		return false, err
	} else if follow != nil {
		return false, nil
	}

	follow := models.Follow{
		FollowerID: follower.ID,
		AuthorID:   author.ID,
	}

	if err := database.C.Create(&follow).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UnfollowAccount deletes the existing edge; a missing edge surfaces
// gorm.ErrRecordNotFound so the handler can 404.
func UnfollowAccount(follower models.Account, author models.Account) error {
	follow, err := GetFollowOnAccount(follower, author)
	if err != nil {
		return err
	}
	if follow == nil {
		return gorm.ErrRecordNotFound
	}

	return database.C.Delete(follow).Error
}

func CountFollows(author models.Account) (int64, error) {
	var count int64
	err := database.C.Model(&models.Follow{}).Where("author_id = ?", author.ID).Count(&count).Error
	return count, err
}
