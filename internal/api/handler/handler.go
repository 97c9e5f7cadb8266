package handler

import "inpyeon/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth    *AuthHandler
	Trainee *TraineeHandler
	Letter  *LetterHandler
	Export  *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Trainee: NewTraineeHandler(svc.Trainee),
		Letter:  NewLetterHandler(svc.Letter),
		Export:  NewExportHandler(svc.Export),
	}
}
