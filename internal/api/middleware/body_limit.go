package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inpyeon/backend/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// maxBytes: 允许的最大请求体字节数（信件正文上限 1500 字，64KB 绰绰有余）
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Fail(c, http.StatusRequestEntityTooLarge, "요청이 너무 큽니다.")
				return
			}
		}
	}
}
