package service

import (
	"go.uber.org/zap"

	"inpyeon/backend/internal/repository"
	"inpyeon/backend/pkg/jwt"
	"inpyeon/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth    AuthService
	Trainee TraineeService
	Letter  LetterService
	Export  ExportService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, jwtMgr, rdb, logger),
		Trainee: NewTraineeService(repo, logger),
		Letter:  NewLetterService(repo, logger),
		Export:  NewExportService(repo, logger),
	}
}
