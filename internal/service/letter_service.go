package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"inpyeon/backend/internal/dto"
	"inpyeon/backend/internal/model"
	"inpyeon/backend/internal/repository"
)

// ── 信件模块业务错误 ──

var (
	ErrEmptyFields      = errors.New("모든 항목을 입력하세요.")
	ErrTitleTooLong     = errors.New("제목은 50자 이내로 입력하세요.")
	ErrSenderTooLong    = errors.New("보내는 사람은 20자 이내로 입력하세요.")
	ErrContentTooLong   = errors.New("내용은 1500자 이내로 입력하세요.")
	ErrLetterNotFound   = errors.New("해당 편지를 찾을 수 없습니다.")
	ErrLetterNotOwned   = errors.New("본인 메일함의 편지만 접근할 수 있습니다.")
	ErrMailboxNotOwned  = errors.New("본인 메일함만 조회할 수 있습니다.")
)

// LetterService 信件业务接口
type LetterService interface {
	// Send 寄信：去除首尾空白、校验长度上限、以服务端时钟写入 created_at
	Send(ctx context.Context, req *dto.SendLetterRequest) error
	// List 返回某训练兵的全部信件，按 created_at 降序（最新在前）
	List(ctx context.Context, traineeID int64) ([]dto.LetterItem, error)
	// Delete 删除信件。requesterID 为经认证的调用者，仅能删除本人信件。
	Delete(ctx context.Context, letterID, requesterID int64) error
}

type letterService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // 测试注入点
}

// NewLetterService 创建 LetterService 实例
func NewLetterService(repo *repository.Repository, logger *zap.Logger) LetterService {
	return &letterService{repo: repo, logger: logger, now: time.Now}
}

func (s *letterService) Send(ctx context.Context, req *dto.SendLetterRequest) error {
	title := strings.TrimSpace(req.Title)
	sender := strings.TrimSpace(req.Sender)
	content := strings.TrimSpace(req.Content)

	// 去空白后非空 + 长度上限（以字符计）
	if title == "" || sender == "" || content == "" {
		return ErrEmptyFields
	}
	if utf8.RuneCountInString(title) > dto.MaxTitleLen {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(sender) > dto.MaxSenderLen {
		return ErrSenderTooLong
	}
	if utf8.RuneCountInString(content) > dto.MaxContentLen {
		return ErrContentTooLong
	}

	letter := &model.Letter{
		TraineeID: req.TraineeID,
		Title:     title,
		Sender:    sender,
		Content:   content,
		CreatedAt: s.now().UTC(), // 服务端时钟，不信任客户端时间
	}

	// 收信人不存在时外键违约在此浮出，按基础设施错误处理
	if err := s.repo.Letter.Create(ctx, letter); err != nil {
		s.logger.Error("信件写入失败",
			zap.Int64("trainee_id", req.TraineeID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (s *letterService) List(ctx context.Context, traineeID int64) ([]dto.LetterItem, error) {
	letters, err := s.repo.Letter.ListByTrainee(ctx, traineeID)
	if err != nil {
		s.logger.Error("查询邮箱失败", zap.Int64("trainee_id", traineeID), zap.Error(err))
		return nil, err
	}

	items := make([]dto.LetterItem, 0, len(letters))
	for _, l := range letters {
		items = append(items, dto.LetterItem{
			ID:        l.ID,
			Title:     l.Title,
			Sender:    l.Sender,
			Content:   l.Content,
			CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return items, nil
}

func (s *letterService) Delete(ctx context.Context, letterID, requesterID int64) error {
	letter, err := s.repo.Letter.GetByID(ctx, letterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLetterNotFound
		}
		s.logger.Error("查询信件失败", zap.Int64("letter_id", letterID), zap.Error(err))
		return err
	}

	// 所有权检查：能力绑定到认证身份，而非任何持有 ID 的调用方
	if letter.TraineeID != requesterID {
		return ErrLetterNotOwned
	}

	if err := s.repo.Letter.Delete(ctx, letterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLetterNotFound
		}
		s.logger.Error("删除信件失败", zap.Int64("letter_id", letterID), zap.Error(err))
		return err
	}
	return nil
}
