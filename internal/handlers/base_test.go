package handlers

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(gorm.ErrRecordNotFound) {
		t.Error("Expected true for ErrRecordNotFound")
	}
	// 包装后的错误同样要识别出来
	if !isNotFound(fmt.Errorf("fetching post: %w", gorm.ErrRecordNotFound)) {
		t.Error("Expected true for wrapped ErrRecordNotFound")
	}

	// 连接断开这类存储故障不能被当成 404
	if isNotFound(errors.New("connection refused")) {
		t.Error("Expected false for a storage failure")
	}
	if isNotFound(nil) {
		t.Error("Expected false for nil")
	}
}
