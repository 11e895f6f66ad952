package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func TestReactionIncrementExpr(t *testing.T) {
	expr := reactionIncrement("❤️")

	// 必须是单条原子更新，缺失的键按 0 处理
	if !strings.Contains(expr.SQL, "jsonb_set") {
		t.Errorf("Expected jsonb_set expression, got %q", expr.SQL)
	}
	if !strings.Contains(expr.SQL, "COALESCE(reactions->>?, '0')") {
		t.Errorf("Expected coalesced zero default, got %q", expr.SQL)
	}
	if len(expr.Vars) != 2 || expr.Vars[0] != "❤️" || expr.Vars[1] != "❤️" {
		t.Errorf("Unexpected vars: %v", expr.Vars)
	}
}

func TestCreatePostValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/posts", NewPostHandler().Create)

	// 缺少 content 直接 400，不触库
	w := doJSON(r, "POST", "/api/posts", `{"nickname":"Ghost"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty content, got %d", w.Code)
	}

	w = doJSON(r, "POST", "/api/posts", `not json`, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", w.Code)
	}
}

func TestPatchFieldMergeRequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.PATCH("/api/posts/:id", NewPostHandler().Patch)

	// 不带 reaction 的 PATCH 就是编辑，无管理会话必须拒绝，不能碰库
	w := doJSON(r, "PATCH", "/api/posts/p1", `{"content":"defaced"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for field merge without admin session, got %d", w.Code)
	}

	w = doJSON(r, "PATCH", "/api/posts/p1", `{"nickname":"Mallory","department":"CS"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for field merge without admin session, got %d", w.Code)
	}
}

func TestCreateCommentValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/comments/:postId", NewCommentHandler().Create)

	w := doJSON(r, "POST", "/api/comments/p1", `{"nickname":"Ghost","content":""}`, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty content, got %d", w.Code)
	}
}
