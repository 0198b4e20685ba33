package models

import "time"

// Post is a user-authored text entry with an optional group tag and an
// optional image. PubDate is assigned on creation and never updated; every
// listing orders by it, newest first.
type Post struct {
	ID       int       `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"not null" json:"text"`
	PubDate  time.Time `gorm:"autoCreateTime;index" json:"pub_date"`
	AuthorID int       `gorm:"not null;index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	// GroupID is cleared, not cascaded, when the group is deleted.
	GroupID *int   `gorm:"index" json:"group_id,omitempty"`
	Group   *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	Image   string `json:"image,omitempty"`
}

// Excerpt returns the first limit runes of the post text, used for
// human-readable labels only.
func (p Post) Excerpt(limit int) string {
	return truncate(p.Text, limit)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
