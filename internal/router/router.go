package router

import (
	"net/http"

	"whisperwall/internal/handlers"
	"whisperwall/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	noteHandler := handlers.NewNoteHandler()
	adminHandler := handlers.NewAdminHandler()

	api := r.Group("/api")

	// 公共路由 (Public Routes)
	api.GET("/posts", postHandler.List)                 // 未过期的帖子列表
	api.POST("/posts", postHandler.Create)              // 发布帖子
	api.PATCH("/posts/:id", postHandler.Patch)          // 表情回应 / 字段合并
	api.GET("/comments", commentHandler.List)           // 评论（按帖子分组）
	api.POST("/comments/:postId", commentHandler.Create) // 发表评论
	api.GET("/notes", noteHandler.List)                 // 公告列表
	api.GET("/trending", postHandler.Trending)          // 热门标签

	api.POST("/admin/login", adminHandler.Login)    // 管理员登录
	api.POST("/admin/logout", adminHandler.Logout)  // 退出登录
	api.GET("/admin/session", adminHandler.Session) // 会话状态

	// 管理路由 (Admin Routes)
	authorized := api.Group("/")
	authorized.Use(middleware.AdminRequired())
	{
		authorized.GET("/admin/posts", adminHandler.ListPosts) // 全部帖子（含过期和提交者信息）
		authorized.PUT("/posts/:id", postHandler.Update)       // 编辑帖子
		authorized.DELETE("/posts/:id", postHandler.Delete)    // 删除帖子（级联删评论）
		authorized.POST("/notes", noteHandler.Create)          // 发布公告
		authorized.DELETE("/notes/:id", noteHandler.Delete)    // 删除公告
	}

	// 未匹配的路由返回 JSON 404，而不是默认的空响应
	r.NoRoute(func(c *gin.Context) {
		handlers.JSONError(c, http.StatusNotFound, "not found")
	})
}
