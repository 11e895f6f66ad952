package models

import (
	"time"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	PostID    string    `gorm:"size:16;index;not null" json:"post_id"` // 按值关联 Post.ID，无外键约束
	Nickname  string    `gorm:"not null" json:"nickname"`
	Avatar    string    `json:"avatar"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	// Comments are immutable once posted. No UpdatedAt, no soft delete --
	// the only removal path is the cascade when the parent post goes away.
}
