package models

const (
	AccountTypeRegular = iota
	AccountTypeAdmin
)

// Account is the local mirror of an identity owned by the authentication
// subsystem. Tokens are minted elsewhere; this service only resolves them.
type Account struct {
	BaseModel

	Type int `json:"type"`

	Name string `json:"name" gorm:"uniqueIndex"`
	Nick string `json:"nick"`

	Posts    []Post    `json:"posts" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AuthorID"`
}
