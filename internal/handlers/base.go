package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// isNotFound 区分记录不存在和真正的存储故障，后者要走 500 而不是 404
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// JSONError 统一的错误响应结构
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// InternalError 记录内部错误详情，只向客户端返回笼统信息
// 原始实现会把堆栈细节泄漏给客户端，这里不保留这个行为
func InternalError(c *gin.Context, action string, err error) {
	log.Printf("%s: %v", action, err)
	JSONError(c, 500, "Error "+action)
}
