package services

import (
	"reflect"
	"testing"
	"time"

	"whisperwall/internal/models"
)

func sampleComments(now time.Time) []models.Comment {
	return []models.Comment{
		{ID: "c1", PostID: "p1", Timestamp: now.Add(-1 * time.Hour)},
		{ID: "c2", PostID: "p1", Timestamp: now.Add(-30 * time.Minute)},
		{ID: "c3", PostID: "p2", Timestamp: now.Add(-2 * time.Hour)},
	}
}

func TestGroupComments(t *testing.T) {
	now := time.Now()
	grouped := GroupComments(sampleComments(now))

	if len(grouped) != 2 {
		t.Fatalf("Expected 2 buckets, got %d", len(grouped))
	}

	p1 := grouped["p1"]
	if len(p1) != 2 {
		t.Fatalf("Expected 2 comments for p1, got %d", len(p1))
	}
	// 组内时间倒序，最新的在前
	if p1[0].ID != "c2" || p1[1].ID != "c1" {
		t.Errorf("Unexpected order for p1: %s, %s", p1[0].ID, p1[1].ID)
	}

	if len(grouped["p2"]) != 1 || grouped["p2"][0].ID != "c3" {
		t.Errorf("Unexpected bucket for p2: %v", grouped["p2"])
	}
}

func TestGroupCommentsIdempotent(t *testing.T) {
	now := time.Now()
	first := GroupComments(sampleComments(now))
	second := GroupComments(sampleComments(now))

	if !reflect.DeepEqual(first, second) {
		t.Error("Grouping the same input twice produced different results")
	}
}

func TestGroupCommentsAfterCascade(t *testing.T) {
	now := time.Now()
	comments := sampleComments(now)

	// 模拟删除 p1 后的级联：p1 的评论消失，其他帖子的保留
	var remaining []models.Comment
	for _, comment := range comments {
		if comment.PostID != "p1" {
			remaining = append(remaining, comment)
		}
	}

	grouped := GroupComments(remaining)
	if _, ok := grouped["p1"]; ok {
		t.Error("Expected no bucket for deleted post p1")
	}
	if len(grouped["p2"]) != 1 || grouped["p2"][0].ID != "c3" {
		t.Errorf("Comments of other posts must survive the cascade, got %v", grouped["p2"])
	}
}

func TestCountHashtags(t *testing.T) {
	posts := []models.Post{
		{Hashtags: []string{"#confession", "#truth"}},
		{Hashtags: []string{"#confession", "#night"}},
		{Hashtags: []string{"#confession", "#truth"}},
	}

	counts := CountHashtags(posts)
	expected := []TagCount{
		{Tag: "#confession", Count: 3},
		{Tag: "#truth", Count: 2},
		{Tag: "#night", Count: 1},
	}
	if !reflect.DeepEqual(counts, expected) {
		t.Errorf("Unexpected counts: %v", counts)
	}
}
