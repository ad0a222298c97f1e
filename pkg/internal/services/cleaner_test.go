package services

import (
	"testing"
	"time"

	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The cleaner exists for deployments without foreign key enforcement, so
// this suite opens sqlite with the pragma off to make orphans creatable.
func TestDoAutoDatabaseCleanup(t *testing.T) {
	source, err := gorm.Open(sqlite.Open("file:cleanup?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("unable to open test database: %v", err)
	}
	if err := database.RunMigration(source); err != nil {
		t.Fatalf("unable to migrate test database: %v", err)
	}
	database.C = source

	alice := seedAccount(t, "alice")
	kept := seedPost(t, alice, nil, "kept", time.Now())
	if _, err := NewComment(alice, kept, "kept comment"); err != nil {
		t.Fatalf("unable to comment: %v", err)
	}

	orphanGroupID := uint(4040)
	orphans := []any{
		&models.Post{Text: "orphaned", AuthorID: 9999, PublishedAt: time.Now()},
		&models.Comment{Text: "orphaned", PostID: 9999, AuthorID: alice.ID},
		&models.Follow{FollowerID: alice.ID, AuthorID: 9999},
	}
	for _, orphan := range orphans {
		if err := database.C.Create(orphan).Error; err != nil {
			t.Fatalf("unable to seed orphan row: %v", err)
		}
	}
	if err := database.C.Model(&kept).Update("group_id", orphanGroupID).Error; err != nil {
		t.Fatalf("unable to point post at a dead group: %v", err)
	}

	DoAutoDatabaseCleanup()

	var posts, comments, follows int64
	database.C.Model(&models.Post{}).Count(&posts)
	database.C.Model(&models.Comment{}).Count(&comments)
	database.C.Model(&models.Follow{}).Count(&follows)
	if posts != 1 || comments != 1 || follows != 0 {
		t.Errorf("cleanup left posts=%d comments=%d follows=%d, want 1/1/0", posts, comments, follows)
	}

	var got models.Post
	if err := database.C.First(&got, kept.ID).Error; err != nil {
		t.Fatalf("kept post vanished: %v", err)
	}
	if got.GroupID != nil {
		t.Error("dead group reference was not nullified")
	}
}
