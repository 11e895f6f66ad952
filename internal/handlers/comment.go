package handlers

import (
	"net/http"
	"time"

	"whisperwall/internal/db"
	"whisperwall/internal/models"
	"whisperwall/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// List 返回所有评论，按帖子分组，组内时间倒序
func (h *CommentHandler) List(c *gin.Context) {
	var comments []models.Comment
	if err := db.DB.Find(&comments).Error; err != nil {
		InternalError(c, "fetching comments", err)
		return
	}

	c.JSON(http.StatusOK, services.GroupComments(comments))
}

// Create 发表评论并原子递增所属帖子的评论数
// 帖子不存在时直接报 404，不落库（见 DESIGN.md 的决定）
func (h *CommentHandler) Create(c *gin.Context) {
	postID := c.Param("postId")

	var input struct {
		Nickname  string     `json:"nickname"`
		Avatar    string     `json:"avatar"`
		Content   string     `json:"content"`
		Timestamp *time.Time `json:"timestamp"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Content == "" {
		JSONError(c, http.StatusBadRequest, "content is required")
		return
	}

	var post models.Post
	if err := db.DB.Select("id").Where("id = ?", postID).First(&post).Error; err != nil {
		if isNotFound(err) {
			JSONError(c, http.StatusNotFound, "post not found")
			return
		}
		InternalError(c, "fetching post", err)
		return
	}

	nickname := input.Nickname
	if nickname == "" {
		nickname = "Anonymous"
	}

	// 客户端带了时间戳就沿用，否则取当前时间
	timestamp := time.Now()
	if input.Timestamp != nil {
		timestamp = *input.Timestamp
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		Nickname:  nickname,
		Avatar:    input.Avatar,
		Content:   input.Content,
		Timestamp: timestamp,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		InternalError(c, "adding comment", err)
		return
	}

	// 原子递增评论数，避免并发评论时的丢失更新
	if err := db.DB.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error; err != nil {
		InternalError(c, "updating comment count", err)
		return
	}

	invalidatePostCache()

	c.JSON(http.StatusOK, comment)
}
