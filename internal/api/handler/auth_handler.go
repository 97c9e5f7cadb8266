package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inpyeon/backend/internal/dto"
	"inpyeon/backend/internal/service"
	"inpyeon/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register 注册训练兵
// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "모든 항목을 입력하세요.")
		return
	}

	id, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicatePerson):
			response.Conflict(c, service.ErrDuplicatePerson.Error())
		case errors.Is(err, service.ErrUserIDTaken):
			response.Conflict(c, service.ErrUserIDTaken.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.RegisterResponse{Success: true, ID: id})
}

// Login 登录
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "아이디와 비밀번호를 입력하세요.")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CheckID ID 可用性检查（仅咨询，不预留）
// POST /api/check-id
func (h *AuthHandler) CheckID(c *gin.Context) {
	var req dto.CheckIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "아이디를 입력하세요.")
		return
	}

	available, err := h.authSvc.CheckID(c.Request.Context(), req.UserID)
	if err != nil {
		response.InternalError(c)
		return
	}

	if available {
		response.OK(c, dto.CheckIDResponse{Success: true, Message: "사용 가능한 ID입니다."})
	} else {
		response.OK(c, dto.CheckIDResponse{Success: false, Message: "이미 존재하는 ID입니다."})
	}
}

// Logout 登出：拉黑当前 Token
// POST /api/logout（需认证）
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, exp, ok := MustGetTokenJTI(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "로그아웃되었습니다.")
}
