package models

// Group is an admin-managed topical category. The user surface only reads
// them; posts keep a nullable reference that survives group deletion.
type Group struct {
	BaseModel

	Slug        string `json:"slug" gorm:"uniqueIndex" validate:"lowercase"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Posts []Post `json:"posts" gorm:"foreignKey:GroupID"`
}
