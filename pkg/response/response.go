package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构（与原始 API 契约一致：success + message）
// 各成功响应携带端点特有字段时，直接使用 dto 中的响应结构体；
// 本包只负责 {success, message} 形态的通用成功/失败响应。
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ── 成功响应 ──

// OK 200 成功响应，payload 为完整响应体（自带 success 字段）
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// OKMessage 200 成功响应，仅携带消息
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

// ── 错误响应 ──

// Fail 通用失败响应
func Fail(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{
		Success: false,
		Message: message,
	})
}

// FailOK 200 状态下的业务失败（如"查无此人"，需与传输层错误可区分）
func FailOK(c *gin.Context, message string) {
	Fail(c, http.StatusOK, message)
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, message)
}

// InternalError 500（不向终端用户泄漏内部错误细节）
func InternalError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "DB 오류")
}
