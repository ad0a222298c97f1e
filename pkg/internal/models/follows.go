package models

// Follow is a directed subscription edge from one account to an author.
// The composite index keeps duplicates out at the storage layer; the
// services layer additionally treats a duplicate follow as a no-op.
type Follow struct {
	BaseModel

	FollowerID uint    `json:"follower_id" gorm:"uniqueIndex:idx_follow_pair"`
	Follower   Account `json:"follower" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`

	AuthorID uint    `json:"author_id" gorm:"uniqueIndex:idx_follow_pair"`
	Author   Account `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
