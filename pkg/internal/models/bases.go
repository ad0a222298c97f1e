package models

import "time"

// BaseModel uses hard deletes on purpose: the referential-integrity policy
// (cascade vs. nullify) lives in the foreign key constraints, and soft
// deletes would keep those constraints from ever firing.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
