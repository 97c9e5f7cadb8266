package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"inpyeon/backend/internal/dto"
	"inpyeon/backend/internal/service"
	"inpyeon/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportLetters 导出本人邮箱为 Excel
// POST /api/export-letters（需认证，仅限本人邮箱）
func (h *ExportHandler) ExportLetters(c *gin.Context) {
	requesterID, ok := MustGetTraineeID(c)
	if !ok {
		return
	}

	var req dto.ExportLettersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "trainee_id가 필요합니다.")
		return
	}

	if req.TraineeID != requesterID {
		response.Forbidden(c, service.ErrMailboxNotOwned.Error())
		return
	}

	buf, filename, err := h.exportSvc.ExportMailbox(c.Request.Context(), req.TraineeID)
	if err != nil {
		if errors.Is(err, service.ErrTraineeNotFound) {
			response.NotFound(c, service.ErrTraineeNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}

	// 设置下载响应头（文件名含韩文，需 RFC 5987 编码）
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
