package models

import (
	"html/template"
	"time"
)

// Note 管理员公告
type Note struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Timestamp time.Time `json:"timestamp"`

	TextHTML template.HTML `gorm:"-" json:"text_html,omitempty"`
}
