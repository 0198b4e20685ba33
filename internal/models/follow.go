package models

import "time"

// Follow is a directed subscription from User to Author. The composite
// unique index makes the pair a storage-level invariant; handlers treat a
// conflicting insert as success, never as an error.
type Follow struct {
	ID       int  `gorm:"primaryKey" json:"id"`
	UserID   int  `gorm:"not null;uniqueIndex:uniq_following" json:"user_id"`
	AuthorID int  `gorm:"not null;uniqueIndex:uniq_following" json:"author_id"`
	User     User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Author   User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
