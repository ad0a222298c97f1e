package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Text     string `json:"text"`
	Language string `json:"language"`

	// PublishedAt is assigned once at creation and never altered by edits.
	PublishedAt time.Time `json:"published_at"`

	Image       string                      `json:"image"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group" gorm:"constraint:OnDelete:SET NULL"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`
}
