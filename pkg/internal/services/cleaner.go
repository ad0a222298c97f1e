package services

import (
	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup ports the referential-integrity policy to storage
// backends that run without foreign key enforcement: comments and follow
// edges lose their rows when an endpoint vanished, posts only lose the
// group reference.
func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Now cleaning up entire database...")

	var count int64

	for _, join := range []struct {
		model  any
		clause string
	}{
		{&models.Comment{}, "post_id NOT IN (SELECT id FROM posts)"},
		{&models.Comment{}, "author_id NOT IN (SELECT id FROM accounts)"},
		{&models.Post{}, "author_id NOT IN (SELECT id FROM accounts)"},
		{&models.Follow{}, "follower_id NOT IN (SELECT id FROM accounts)"},
		{&models.Follow{}, "author_id NOT IN (SELECT id FROM accounts)"},
	} {
		tx := database.C.Where(join.clause).Delete(join.model)
		if tx.Error != nil {
			log.Warn().Err(tx.Error).Msg("An error occurred when running database cleanup...")
			continue
		}
		count += tx.RowsAffected
	}

	tx := database.C.Model(&models.Post{}).
		Where("group_id IS NOT NULL AND group_id NOT IN (SELECT id FROM groups)").
		Update("group_id", nil)
	if tx.Error != nil {
		log.Warn().Err(tx.Error).Msg("An error occurred when running database cleanup...")
	}
	count += tx.RowsAffected

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
