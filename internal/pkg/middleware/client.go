package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
)

const (
	// ContextKeyClientID gin 上下文中的调用方标识
	ContextKeyClientID = "client_id"

	// DefaultClientID 未携带 X-Client-ID 时使用
	DefaultClientID = "default"

	maxClientIDLength = 128
)

// ClientID 从 X-Client-ID 读取调用方标识，凭证按此标识隔离
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(logger.HeaderClientID))
		if id == "" || len(id) > maxClientIDLength {
			id = DefaultClientID
		}

		c.Set(ContextKeyClientID, id)
		c.Request = c.Request.WithContext(logger.WithClientID(c.Request.Context(), id))
		c.Next()
	}
}

// GetClientID 读取调用方标识，中间件未执行时返回默认值
func GetClientID(c *gin.Context) string {
	if id := c.GetString(ContextKeyClientID); id != "" {
		return id
	}
	return DefaultClientID
}
