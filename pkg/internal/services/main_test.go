package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/plumehq/plume/pkg/internal/database"
	"github.com/plumehq/plume/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// useTestDatabase points the shared gorm handle at a fresh in-memory
// sqlite instance. Foreign key enforcement stays on so the cascade and
// nullify policies are exercised for real.
func useTestDatabase(t *testing.T) {
	t.Helper()

	viper.Set("content.page_size", 10)
	viper.Set("content.max_post_length", 30)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("unable to open test database: %v", err)
	}
	if err := database.RunMigration(source); err != nil {
		t.Fatalf("unable to migrate test database: %v", err)
	}

	database.C = source
}

func seedAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account := models.Account{Name: name, Nick: name}
	if err := database.C.Create(&account).Error; err != nil {
		t.Fatalf("unable to seed account %s: %v", name, err)
	}
	return account
}

func seedGroup(t *testing.T, slug string) models.Group {
	t.Helper()

	group := models.Group{Slug: slug, Title: slug, Description: "seeded"}
	if err := database.C.Create(&group).Error; err != nil {
		t.Fatalf("unable to seed group %s: %v", slug, err)
	}
	return group
}

func seedPost(t *testing.T, author models.Account, group *models.Group, text string, publishedAt time.Time) models.Post {
	t.Helper()

	post := models.Post{
		Text:        text,
		Language:    "en",
		PublishedAt: publishedAt,
		AuthorID:    author.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := database.C.Create(&post).Error; err != nil {
		t.Fatalf("unable to seed post: %v", err)
	}
	return post
}
