package services

import (
	"fmt"
	"regexp"
	"time"

	"whisperwall/internal/models"
)

// ExpirationWindow 帖子的生命周期，超过后从列表中隐藏（软过期，不删除记录）
const ExpirationWindow = 48 * time.Hour

var hashtagRe = regexp.MustCompile(`#\w+`)

// ExtractHashtags 从正文中提取 #话题 标签，按出现顺序去重
// 大小写敏感，只按完全相同的字符串去重
func ExtractHashtags(content string) []string {
	matches := hashtagRe.FindAllString(content, -1)
	if matches == nil {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	tags := make([]string, 0, len(matches))
	for _, tag := range matches {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// MergeHashtags 合并用户选择的标签和正文提取的标签，集合语义
func MergeHashtags(selected, extracted []string) []string {
	seen := make(map[string]bool, len(selected)+len(extracted))
	merged := make([]string, 0, len(selected)+len(extracted))
	for _, tag := range selected {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
	}
	for _, tag := range extracted {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
	}
	return merged
}

// RemainingLabel 剩余时间的展示文案
// 满 1 小时显示 "Xh left"（向下取整），否则显示 "Xm left"，最小 0m
func RemainingLabel(remaining time.Duration) string {
	hours := int(remaining.Hours())
	if hours >= 1 {
		return fmt.Sprintf("%dh left", hours)
	}
	minutes := int(remaining.Minutes())
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dm left", minutes)
}

// ApplyExpiry 过滤掉已过期的帖子并填充 ExpiresIn 文案，保持输入顺序
// 刚好满 48 小时也算过期（age >= window 即排除）
func ApplyExpiry(posts []models.Post, now time.Time) []models.Post {
	active := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		age := now.Sub(p.Timestamp)
		if age >= ExpirationWindow {
			continue
		}
		p.ExpiresIn = RemainingLabel(ExpirationWindow - age)
		active = append(active, p)
	}
	return active
}

// ExpiryLabel 单个帖子的展示文案，过期的帖子返回 "expired"（管理端用，不过滤）
func ExpiryLabel(timestamp, now time.Time) string {
	remaining := ExpirationWindow - now.Sub(timestamp)
	if remaining <= 0 {
		return "expired"
	}
	return RemainingLabel(remaining)
}
