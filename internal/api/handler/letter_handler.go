package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"inpyeon/backend/internal/dto"
	"inpyeon/backend/internal/service"
	"inpyeon/backend/pkg/response"
)

// LetterHandler 信件模块 HTTP 处理器
type LetterHandler struct {
	letterSvc service.LetterService
}

// NewLetterHandler 创建 LetterHandler
func NewLetterHandler(letterSvc service.LetterService) *LetterHandler {
	return &LetterHandler{letterSvc: letterSvc}
}

// Send 寄信（无需登录：任何人都可以给训练兵写信）
// POST /api/send-letter
func (h *LetterHandler) Send(c *gin.Context) {
	var req dto.SendLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "모든 항목을 입력하세요.")
		return
	}

	if err := h.letterSvc.Send(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyFields),
			errors.Is(err, service.ErrTitleTooLong),
			errors.Is(err, service.ErrSenderTooLong),
			errors.Is(err, service.ErrContentTooLong):
			response.BadRequest(c, err.Error())
		default:
			// 收信人不存在（外键违约）亦按通用失败处理，不泄漏存在性
			response.InternalError(c)
		}
		return
	}

	response.OKMessage(c, "편지가 성공적으로 전송되었습니다.")
}

// List 邮箱列表（需认证，仅限本人邮箱）
// POST /api/letters
func (h *LetterHandler) List(c *gin.Context) {
	requesterID, ok := MustGetTraineeID(c)
	if !ok {
		return
	}

	var req dto.LettersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "trainee_id가 필요합니다.")
		return
	}

	// 所有权检查：请求的邮箱必须是认证身份本人
	if req.TraineeID != requesterID {
		response.Forbidden(c, service.ErrMailboxNotOwned.Error())
		return
	}

	letters, err := h.letterSvc.List(c.Request.Context(), req.TraineeID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.LettersResponse{Success: true, Letters: letters})
}

// Delete 删信（需认证，仅限本人信件）
// POST /api/delete-letter
func (h *LetterHandler) Delete(c *gin.Context) {
	requesterID, ok := MustGetTraineeID(c)
	if !ok {
		return
	}

	var req dto.DeleteLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "letter_id가 필요합니다.")
		return
	}

	if err := h.letterSvc.Delete(c.Request.Context(), req.LetterID, requesterID); err != nil {
		switch {
		case errors.Is(err, service.ErrLetterNotFound):
			response.NotFound(c, service.ErrLetterNotFound.Error())
		case errors.Is(err, service.ErrLetterNotOwned):
			response.Forbidden(c, service.ErrLetterNotOwned.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OKMessage(c, "편지가 삭제되었습니다.")
}
