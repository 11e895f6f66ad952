package services

import (
	"sort"

	"whisperwall/internal/models"
)

// TagCount 热门标签统计
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// GroupComments 按 PostID 分组，组内按时间倒序
// 纯函数：同样的输入总是产出同样的分组和排序
func GroupComments(comments []models.Comment) map[string][]models.Comment {
	grouped := make(map[string][]models.Comment)
	for _, comment := range comments {
		grouped[comment.PostID] = append(grouped[comment.PostID], comment)
	}
	for postID := range grouped {
		bucket := grouped[postID]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Timestamp.After(bucket[j].Timestamp)
		})
	}
	return grouped
}

// CountHashtags 统计帖子中每个标签的出现次数，按次数倒序（相同次数按标签名排序）
func CountHashtags(posts []models.Post) []TagCount {
	counts := make(map[string]int)
	for _, p := range posts {
		for _, tag := range p.Hashtags {
			counts[tag]++
		}
	}
	tags := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		tags = append(tags, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	return tags
}
