package models

import "time"

// Comment is a reply attached to a post. Comments are immutable once
// created; they disappear only when their post or author is deleted.
type Comment struct {
	ID       int       `gorm:"primaryKey" json:"id"`
	PostID   int       `gorm:"not null;index" json:"post_id"`
	Post     Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorID int       `gorm:"not null" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Text     string    `gorm:"not null" json:"text"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`
}

// Excerpt returns the first limit runes of the comment text.
func (c Comment) Excerpt(limit int) string {
	return truncate(c.Text, limit)
}
