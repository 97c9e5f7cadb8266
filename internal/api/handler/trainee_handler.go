package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"inpyeon/backend/internal/dto"
	"inpyeon/backend/internal/service"
	"inpyeon/backend/pkg/response"
)

// TraineeHandler 训练兵模块 HTTP 处理器
type TraineeHandler struct {
	traineeSvc service.TraineeService
}

// NewTraineeHandler 创建 TraineeHandler
func NewTraineeHandler(traineeSvc service.TraineeService) *TraineeHandler {
	return &TraineeHandler{traineeSvc: traineeSvc}
}

// Search 按三元组查询收信人
// POST /api/search-trainee
//
// 查无此人返回 200 + success=false：业务性"未找到"必须与传输层错误可区分
func (h *TraineeHandler) Search(c *gin.Context) {
	var req dto.SearchTraineeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "모든 항목을 입력하세요.")
		return
	}

	trainee, err := h.traineeSvc.Search(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrTraineeNotFound) {
			response.FailOK(c, service.ErrTraineeNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, dto.SearchTraineeResponse{Success: true, Trainee: *trainee})
}

// Reset 删除全部训练兵（级联删除信件）。开发/测试用途。
// POST /api/reset-trainees
func (h *TraineeHandler) Reset(c *gin.Context) {
	if _, err := h.traineeSvc.ResetAll(c.Request.Context()); err != nil {
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "모든 훈련병 정보가 삭제되었습니다.")
}
