package handlers

import (
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"whisperwall/internal/db"
	"whisperwall/internal/middleware"
	"whisperwall/internal/models"
	"whisperwall/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// checkPassword 校验管理员口令
// 优先用 ADMIN_PASSWORD_HASH（bcrypt），未配置时退回 ADMIN_PASSWORD 明文比对
func checkPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(plain), []byte(password)) == 1
}

// Login 管理员登录，成功后写入会话
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if !checkPassword(input.Password) {
		JSONError(c, http.StatusUnauthorized, "incorrect password")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.AdminSessionKey, true)
	if err := session.Save(); err != nil {
		InternalError(c, "saving session", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout 退出登录
func (h *AdminHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.AdminSessionKey)
	if err := session.Save(); err != nil {
		InternalError(c, "saving session", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session 返回当前会话是否为管理员
func (h *AdminHandler) Session(c *gin.Context) {
	session := sessions.Default(c)
	isAdmin, _ := session.Get(middleware.AdminSessionKey).(bool)
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// ListPosts 管理端帖子列表：包含已过期的帖子和提交者信息，不走缓存
func (h *AdminHandler) ListPosts(c *gin.Context) {
	var posts []models.Post
	if err := db.DB.Order("timestamp DESC").Find(&posts).Error; err != nil {
		InternalError(c, "fetching posts", err)
		return
	}

	now := time.Now()
	for i := range posts {
		posts[i].ExpiresIn = services.ExpiryLabel(posts[i].Timestamp, now)
	}

	c.JSON(http.StatusOK, posts)
}
