package models

import "time"

// Group is a named topic posts can optionally belong to. Groups are created
// by administrators and are referenced, never owned, by posts.
type Group struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Slug        string `gorm:"uniqueIndex;size:50;not null" json:"slug"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

type CreateGroupRequest struct {
	Slug        string `json:"slug" form:"slug"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}
