package models

import (
	"html/template"
	"time"
)

type Post struct {
	ID           string         `gorm:"primaryKey;size:16" json:"id"`
	Nickname     string         `gorm:"not null" json:"nickname"`
	Avatar       string         `json:"avatar"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	Hashtags     []string       `gorm:"type:jsonb;serializer:json" json:"hashtags"`
	Department   string         `gorm:"size:50" json:"department"`
	Year         string         `gorm:"size:20" json:"year"`
	Timestamp    time.Time      `gorm:"index;not null" json:"timestamp"`
	CommentCount int            `gorm:"default:0" json:"comment_count"`
	Reactions    map[string]int `gorm:"type:jsonb;serializer:json" json:"reactions"`
	IP           string         `gorm:"size:45" json:"ip,omitempty"`          // 仅管理端返回
	DeviceInfo   string         `gorm:"size:200" json:"device_info,omitempty"` // 仅管理端返回

	// 非数据库字段，读取时根据 Timestamp 实时计算
	ExpiresIn   string        `gorm:"-" json:"expires_in"`
	ContentHTML template.HTML `gorm:"-" json:"content_html,omitempty"`
}
