package handlers

import (
	"net/http"
	"time"

	"whisperwall/internal/db"
	"whisperwall/internal/middleware"
	"whisperwall/internal/models"
	"whisperwall/internal/services"
	"whisperwall/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const postListCacheKey = "posts:active"

type PostHandler struct {
	trending *services.TrendingService
}

func NewPostHandler() *PostHandler {
	return &PostHandler{
		trending: services.GetTrendingService(),
	}
}

// PostInput 发帖/编辑共用的请求体
type PostInput struct {
	Nickname   string   `json:"nickname"`
	Avatar     string   `json:"avatar"`
	Content    string   `json:"content"`
	Hashtags   []string `json:"hashtags"`
	Department string   `json:"department"`
	Year       string   `json:"year"`
}

// reactionIncrement 针对动态 emoji 键的原子自增表达式
// 对应 Mongo 的 $inc: {"reactions.X": 1}，缺失的键按 0 处理
func reactionIncrement(emoji string) clause.Expr {
	return gorm.Expr(
		`jsonb_set(COALESCE(reactions, '{}'::jsonb), ARRAY[?]::text[], (COALESCE(reactions->>?, '0')::int + 1)::text::jsonb)`,
		emoji, emoji,
	)
}

func invalidatePostCache() {
	utils.GetCache().Delete(postListCacheKey)
}

// List 返回所有未过期的帖子，时间倒序
func (h *PostHandler) List(c *gin.Context) {
	var posts []models.Post

	if cached := utils.GetCache().Get(postListCacheKey); cached != nil {
		if cachedPosts, ok := cached.([]models.Post); ok {
			posts = cachedPosts
		}
	}

	if posts == nil {
		cutoff := time.Now().Add(-services.ExpirationWindow)
		if err := db.DB.Where("timestamp > ?", cutoff).
			Order("timestamp DESC").
			Find(&posts).Error; err != nil {
			InternalError(c, "fetching posts", err)
			return
		}
		// 写入缓存，有效期 1 分钟；ExpiresIn 文案每次请求实时计算
		utils.GetCache().Set(postListCacheKey, posts, 1*time.Minute)
	}

	active := services.ApplyExpiry(posts, time.Now())
	for i := range active {
		// 提交者信息仅管理端可见
		active[i].IP = ""
		active[i].DeviceInfo = ""
		active[i].ContentHTML = utils.RenderMarkdown(active[i].Content)
	}

	c.JSON(http.StatusOK, active)
}

// Create 发布新帖子
func (h *PostHandler) Create(c *gin.Context) {
	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Content == "" {
		JSONError(c, http.StatusBadRequest, "content is required")
		return
	}

	nickname := input.Nickname
	if nickname == "" {
		nickname = "Anonymous"
	}
	avatar := input.Avatar
	if avatar == "" {
		avatar = "https://api.dicebear.com/7.x/avataaars/svg?seed=" + nickname
	}

	post := models.Post{
		ID:           utils.RandStringBytesMaskImpr(8),
		Nickname:     nickname,
		Avatar:       avatar,
		Content:      input.Content,
		Hashtags:     services.MergeHashtags(input.Hashtags, services.ExtractHashtags(input.Content)),
		Department:   input.Department,
		Year:         input.Year,
		Timestamp:    time.Now(),
		CommentCount: 0,
		Reactions:    map[string]int{},
		IP:           c.ClientIP(),
		DeviceInfo:   c.Request.UserAgent(),
	}

	if err := db.DB.Create(&post).Error; err != nil {
		InternalError(c, "adding post", err)
		return
	}

	invalidatePostCache()
	h.trending.ScheduleRefresh()

	post.IP = ""
	post.DeviceInfo = ""
	post.ExpiresIn = services.ExpiryLabel(post.Timestamp, time.Now())
	c.JSON(http.StatusOK, post)
}

// Update 管理员编辑帖子，整体替换可编辑字段
// 标签按和发布时相同的规则重新提取合并
func (h *PostHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var post models.Post
	if err := db.DB.Where("id = ?", id).First(&post).Error; err != nil {
		if isNotFound(err) {
			JSONError(c, http.StatusNotFound, "post not found")
			return
		}
		InternalError(c, "fetching post", err)
		return
	}

	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Content == "" {
		JSONError(c, http.StatusBadRequest, "content is required")
		return
	}

	post.Nickname = input.Nickname
	post.Content = input.Content
	post.Department = input.Department
	post.Year = input.Year
	if input.Avatar != "" {
		post.Avatar = input.Avatar
	}
	post.Hashtags = services.MergeHashtags(input.Hashtags, services.ExtractHashtags(input.Content))

	if err := db.DB.Save(&post).Error; err != nil {
		InternalError(c, "updating post", err)
		return
	}

	invalidatePostCache()
	h.trending.ScheduleRefresh()

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Patch 带 reaction 字段时做表情计数的原子自增，否则合并普通字段
func (h *PostHandler) Patch(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Reaction   string   `json:"reaction"`
		Nickname   *string  `json:"nickname"`
		Avatar     *string  `json:"avatar"`
		Content    *string  `json:"content"`
		Department *string  `json:"department"`
		Year       *string  `json:"year"`
		Hashtags   []string `json:"hashtags"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Reaction != "" {
		// 原子自增，并发点击不会丢更新
		result := db.DB.Model(&models.Post{}).
			Where("id = ?", id).
			UpdateColumn("reactions", reactionIncrement(body.Reaction))
		if result.Error != nil {
			InternalError(c, "updating post", result.Error)
			return
		}
		if result.RowsAffected == 0 {
			JSONError(c, http.StatusNotFound, "post not found")
			return
		}

		invalidatePostCache()
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	// 普通字段合并等同于管理员编辑，必须持有管理会话，否则 PUT 的门禁形同虚设
	session := sessions.Default(c)
	if isAdmin, _ := session.Get(middleware.AdminSessionKey).(bool); !isAdmin {
		JSONError(c, http.StatusUnauthorized, "admin session required")
		return
	}

	var post models.Post
	if err := db.DB.Where("id = ?", id).First(&post).Error; err != nil {
		if isNotFound(err) {
			JSONError(c, http.StatusNotFound, "post not found")
			return
		}
		InternalError(c, "fetching post", err)
		return
	}

	if body.Nickname != nil {
		post.Nickname = *body.Nickname
	}
	if body.Avatar != nil {
		post.Avatar = *body.Avatar
	}
	if body.Content != nil {
		post.Content = *body.Content
	}
	if body.Department != nil {
		post.Department = *body.Department
	}
	if body.Year != nil {
		post.Year = *body.Year
	}
	if body.Hashtags != nil {
		post.Hashtags = body.Hashtags
	}

	if err := db.DB.Save(&post).Error; err != nil {
		InternalError(c, "updating post", err)
		return
	}

	invalidatePostCache()
	h.trending.ScheduleRefresh()

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete 删除帖子并级联删除它的评论
// 两步不在一个事务里：先删帖子，评论清理失败时返回可区分的部分失败错误
func (h *PostHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	result := db.DB.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		InternalError(c, "deleting post", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		JSONError(c, http.StatusNotFound, "post not found")
		return
	}

	if err := db.DB.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		invalidatePostCache()
		InternalError(c, "deleting post comments (post already deleted)", err)
		return
	}

	invalidatePostCache()
	h.trending.ScheduleRefresh()

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Trending 活跃帖子的热门标签
func (h *PostHandler) Trending(c *gin.Context) {
	c.JSON(http.StatusOK, h.trending.Top(10))
}
