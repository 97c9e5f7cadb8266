package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"inpyeon/backend/internal/dto"
	"inpyeon/backend/internal/model"
	"inpyeon/backend/internal/repository"
	"inpyeon/backend/pkg/jwt"
	"inpyeon/backend/pkg/redis"
)

// ── 认证模块业务错误（错误文本即面向用户的韩文提示）──

var (
	ErrDuplicatePerson    = errors.New("이미 가입된 사용자입니다.")
	ErrUserIDTaken        = errors.New("이미 존재하는 아이디입니다.")
	ErrInvalidCredentials = errors.New("존재하지 않는 계정입니다. 아이디, 비밀번호를 확인해주세요.")
)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	CheckID(ctx context.Context, userid string) (bool, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// Register 注册训练兵
//
// 单条原子 INSERT，不做先查后插：两个唯一约束
// (userid / name+birth+enter_date) 的冲突即为权威的重复信号，
// 并发注册由存储层裁决，不存在检查与插入之间的竞态窗口。
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	// 密码仅保存 bcrypt 散列
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码散列失败", zap.Error(err))
		return 0, err
	}

	trainee := &model.Trainee{
		Name:         req.Name,
		Birth:        req.Birth,
		EnterDate:    req.EnterDate,
		UserID:       req.UserID,
		PasswordHash: string(hash),
	}

	if err := s.repo.Trainee.Create(ctx, trainee); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateIdentity):
			return 0, ErrDuplicatePerson
		case errors.Is(err, repository.ErrDuplicateUserID):
			return 0, ErrUserIDTaken
		}
		s.logger.Error("注册写入失败", zap.Error(err))
		return 0, err
	}

	return trainee.ID, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. 查询训练兵
	trainee, err := s.repo.Trainee.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询训练兵失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(trainee.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 签发 Token
	token, err := s.jwtMgr.GenerateToken(trainee.ID, trainee.Name)
	if err != nil {
		s.logger.Error("签发 Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Success:   true,
		Name:      trainee.Name,
		UserID:    trainee.UserID,
		TraineeID: trainee.ID,
		Token:     token,
	}, nil
}

// CheckID 检查 userid 是否可用
// 纯咨询性质：不预留 ID，与随后的注册之间允许竞态，
// 注册本身由唯一约束兜底。
func (s *authService) CheckID(ctx context.Context, userid string) (bool, error) {
	exists, err := s.repo.Trainee.ExistsUserID(ctx, userid)
	if err != nil {
		s.logger.Error("查询 userid 占用失败", zap.Error(err))
		return false, err
	}
	return !exists, nil
}

// Logout 将 Token 的 jti 加入黑名单直至自然过期
// Redis 不可用时降级为空操作（登录态本就只存在于客户端内存）
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}
