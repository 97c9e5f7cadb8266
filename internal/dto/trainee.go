package dto

// ── 训练兵模块 DTO ──

// SearchTraineeRequest 收信人三元组查询请求
type SearchTraineeRequest struct {
	Name      string `json:"name"       binding:"required"`
	Birth     string `json:"birth"      binding:"required"`
	EnterDate string `json:"enter_date" binding:"required"`
}

// TraineeInfo 训练兵公开信息（足以展示并作为寄信地址）
type TraineeInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Birth     string `json:"birth"`
	EnterDate string `json:"enter_date"`
}

// SearchTraineeResponse 查询成功响应
type SearchTraineeResponse struct {
	Success bool        `json:"success"`
	Trainee TraineeInfo `json:"trainee"`
	Message string      `json:"message,omitempty"` // 查无此人时由客户端解码使用
}
