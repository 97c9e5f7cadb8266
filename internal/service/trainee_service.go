package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"inpyeon/backend/internal/dto"
	"inpyeon/backend/internal/repository"
)

// ── 训练兵模块业务错误 ──

var (
	ErrTraineeNotFound = errors.New("조회된 훈련병이 없습니다.")
)

// TraineeService 训练兵业务接口
type TraineeService interface {
	// Search 按 (name, birth, enter_date) 三元组精确查询收信人
	Search(ctx context.Context, req *dto.SearchTraineeRequest) (*dto.TraineeInfo, error)
	// ResetAll 删除全部训练兵（级联删除信件）。开发/测试用途。
	ResetAll(ctx context.Context) (int64, error)
}

type traineeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTraineeService 创建 TraineeService 实例
func NewTraineeService(repo *repository.Repository, logger *zap.Logger) TraineeService {
	return &traineeService{repo: repo, logger: logger}
}

func (s *traineeService) Search(ctx context.Context, req *dto.SearchTraineeRequest) (*dto.TraineeInfo, error) {
	// 三元组受 uq_trainee_identity 约束，至多一行；First 仅为兜底
	trainee, err := s.repo.Trainee.FindByIdentity(ctx, req.Name, req.Birth, req.EnterDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTraineeNotFound
		}
		s.logger.Error("三元组查询失败", zap.Error(err))
		return nil, err
	}

	return &dto.TraineeInfo{
		ID:        trainee.ID,
		Name:      trainee.Name,
		Birth:     trainee.Birth,
		EnterDate: trainee.EnterDate,
	}, nil
}

func (s *traineeService) ResetAll(ctx context.Context) (int64, error) {
	deleted, err := s.repo.Trainee.DeleteAll(ctx)
	if err != nil {
		s.logger.Error("重置训练兵失败", zap.Error(err))
		return 0, err
	}

	// 无确认、无审计、任意调用方可达——设计上的已知弱点，仅以日志留痕
	s.logger.Warn("已删除全部训练兵（含级联信件）", zap.Int64("deleted", deleted))
	return deleted, nil
}
