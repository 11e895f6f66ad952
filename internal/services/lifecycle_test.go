package services

import (
	"reflect"
	"testing"
	"time"

	"whisperwall/internal/models"
)

func TestApplyExpiryBoundary(t *testing.T) {
	now := time.Now()
	posts := []models.Post{
		{ID: "fresh", Timestamp: now.Add(-2 * time.Hour)},
		{ID: "almost", Timestamp: now.Add(-(47*time.Hour + 59*time.Minute))},
		{ID: "exact", Timestamp: now.Add(-ExpirationWindow)},
		{ID: "old", Timestamp: now.Add(-ExpirationWindow - time.Second)},
	}

	active := ApplyExpiry(posts, now)

	if len(active) != 2 {
		t.Fatalf("Expected 2 active posts, got %d", len(active))
	}
	// 顺序保持输入顺序
	if active[0].ID != "fresh" || active[1].ID != "almost" {
		t.Errorf("Unexpected order: %s, %s", active[0].ID, active[1].ID)
	}
	if active[0].ExpiresIn != "46h left" {
		t.Errorf("Expected '46h left', got %q", active[0].ExpiresIn)
	}
	if active[1].ExpiresIn != "1m left" {
		t.Errorf("Expected '1m left', got %q", active[1].ExpiresIn)
	}
}

func TestRemainingLabel(t *testing.T) {
	cases := []struct {
		remaining time.Duration
		expected  string
	}{
		{22 * time.Hour, "22h left"},
		{2*time.Hour + 30*time.Minute, "2h left"},
		{60 * time.Minute, "1h left"},
		// 不足 1 小时时绝不显示 "0h..."
		{30 * time.Minute, "30m left"},
		{59*time.Minute + 59*time.Second, "59m left"},
		{90 * time.Second, "1m left"},
		{30 * time.Second, "0m left"},
		{-5 * time.Minute, "0m left"},
	}

	for _, tc := range cases {
		if got := RemainingLabel(tc.remaining); got != tc.expected {
			t.Errorf("RemainingLabel(%v) = %q, expected %q", tc.remaining, got, tc.expected)
		}
	}
}

func TestExpiryLabel(t *testing.T) {
	now := time.Now()
	if got := ExpiryLabel(now.Add(-50*time.Hour), now); got != "expired" {
		t.Errorf("Expected 'expired', got %q", got)
	}
	if got := ExpiryLabel(now.Add(-26*time.Hour), now); got != "22h left" {
		t.Errorf("Expected '22h left', got %q", got)
	}
}

func TestExtractHashtags(t *testing.T) {
	// 大小写敏感，#world 和 #World2 是两个标签
	tags := ExtractHashtags("hello #world #World2")
	if !reflect.DeepEqual(tags, []string{"#world", "#World2"}) {
		t.Errorf("Unexpected tags: %v", tags)
	}

	// 只按完全相同的字符串去重
	tags = ExtractHashtags("#truth again #truth and #Truth")
	if !reflect.DeepEqual(tags, []string{"#truth", "#Truth"}) {
		t.Errorf("Unexpected tags: %v", tags)
	}

	if tags := ExtractHashtags("no tags here"); tags != nil {
		t.Errorf("Expected nil, got %v", tags)
	}
}

func TestMergeHashtags(t *testing.T) {
	merged := MergeHashtags([]string{"#campus", "#life"}, []string{"#life", "#exams"})
	if !reflect.DeepEqual(merged, []string{"#campus", "#life", "#exams"}) {
		t.Errorf("Unexpected merge: %v", merged)
	}

	// 空白标签被丢弃
	merged = MergeHashtags([]string{"", "#a"}, nil)
	if !reflect.DeepEqual(merged, []string{"#a"}) {
		t.Errorf("Unexpected merge: %v", merged)
	}
}
