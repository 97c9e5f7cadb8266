package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inpyeon/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("메일함 내보내기에 실패했습니다.")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 将某训练兵的邮箱导出为 Excel (.xlsx)，一行一封信
//   - 以 bytes.Buffer 返回，由 Handler 层设置下载响应头后写入 Response
//   - 空邮箱导出仅含表头的工作表
type ExportService interface {
	// ExportMailbox 导出邮箱为 Excel，返回 buf、建议文件名
	ExportMailbox(ctx context.Context, traineeID int64) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const exportSheet = "받은 편지"

func (s *exportService) ExportMailbox(ctx context.Context, traineeID int64) (*bytes.Buffer, string, error) {
	// 1. 查询训练兵（文件名需要姓名）
	trainee, err := s.repo.Trainee.GetByID(ctx, traineeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrTraineeNotFound
		}
		s.logger.Error("查询训练兵失败", zap.Error(err))
		return nil, "", err
	}

	// 2. 查询信件（最新在前，与邮箱列表一致）
	letters, err := s.repo.Letter.ListByTrainee(ctx, traineeID)
	if err != nil {
		s.logger.Error("查询邮箱失败", zap.Error(err))
		return nil, "", err
	}

	// 3. 生成工作表
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	headers := []string{"발신자", "제목", "보낸 날짜", "내용"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	for row, l := range letters {
		values := []interface{}{
			l.Sender,
			l.Title,
			l.CreatedAt.UTC().Format(time.RFC3339),
			l.Content,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	// 列宽：内容列放宽，便于直接阅读
	_ = f.SetColWidth(exportSheet, "A", "C", 18)
	_ = f.SetColWidth(exportSheet, "D", "D", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("메일함_%s_%s.xlsx", trainee.Name, time.Now().Format("20060102"))
	return buf, filename, nil
}
