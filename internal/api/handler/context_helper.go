package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"inpyeon/backend/internal/api/middleware"
	"inpyeon/backend/pkg/response"
)

// MustGetTraineeID 从 Gin 上下文中安全提取认证训练兵 ID。
// JWT 中间件未正确注入时返回 false 并写入 401 响应，调用方应直接 return。
func MustGetTraineeID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(middleware.CtxTraineeID)
	if !exists {
		response.Unauthorized(c, "로그인이 필요합니다.")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		response.Unauthorized(c, "로그인이 필요합니다.")
		return 0, false
	}
	return id, true
}

// MustGetTokenJTI 提取当前 Token 的 jti 与过期时间（登出黑名单用）
func MustGetTokenJTI(c *gin.Context) (string, time.Time, bool) {
	v, exists := c.Get(middleware.CtxTokenJTI)
	if !exists {
		response.Unauthorized(c, "로그인이 필요합니다.")
		return "", time.Time{}, false
	}
	jti, ok := v.(string)
	if !ok || jti == "" {
		response.Unauthorized(c, "로그인이 필요합니다.")
		return "", time.Time{}, false
	}

	exp := time.Time{}
	if ev, ok := c.Get(middleware.CtxTokenExp); ok {
		if t, ok := ev.(time.Time); ok {
			exp = t
		}
	}
	return jti, exp, true
}
