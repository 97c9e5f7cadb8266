package repository

import (
	"context"

	"gorm.io/gorm"

	"inpyeon/backend/internal/model"
)

// LetterRepository 信件数据访问接口
type LetterRepository interface {
	Create(ctx context.Context, letter *model.Letter) error
	GetByID(ctx context.Context, id int64) (*model.Letter, error)
	ListByTrainee(ctx context.Context, traineeID int64) ([]model.Letter, error)
	Delete(ctx context.Context, id int64) error
}

// letterRepo LetterRepository 的 GORM 实现
type letterRepo struct {
	db *gorm.DB
}

// NewLetterRepo 创建 LetterRepository 实例
func NewLetterRepo(db *gorm.DB) LetterRepository {
	return &letterRepo{db: db}
}

func (r *letterRepo) Create(ctx context.Context, letter *model.Letter) error {
	return r.db.WithContext(ctx).Create(letter).Error
}

func (r *letterRepo) GetByID(ctx context.Context, id int64) (*model.Letter, error) {
	var letter model.Letter
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&letter).Error
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

func (r *letterRepo) ListByTrainee(ctx context.Context, traineeID int64) ([]model.Letter, error) {
	var letters []model.Letter
	err := r.db.WithContext(ctx).
		Where("trainee_id = ?", traineeID).
		Order("created_at DESC").
		Find(&letters).Error
	if err != nil {
		return nil, err
	}
	return letters, nil
}

func (r *letterRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Letter{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
