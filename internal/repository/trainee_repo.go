package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"inpyeon/backend/internal/model"
)

// TraineeRepository 训练兵数据访问接口
type TraineeRepository interface {
	Create(ctx context.Context, trainee *model.Trainee) error
	GetByID(ctx context.Context, id int64) (*model.Trainee, error)
	GetByUserID(ctx context.Context, userid string) (*model.Trainee, error)
	FindByIdentity(ctx context.Context, name, birth, enterDate string) (*model.Trainee, error)
	ExistsUserID(ctx context.Context, userid string) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// traineeRepo TraineeRepository 的 GORM 实现
type traineeRepo struct {
	db *gorm.DB
}

// NewTraineeRepo 创建 TraineeRepository 实例
func NewTraineeRepo(db *gorm.DB) TraineeRepository {
	return &traineeRepo{db: db}
}

// uniqueViolationCode PostgreSQL unique_violation SQLSTATE
const uniqueViolationCode = "23505"

// translateDuplicate 将 PostgreSQL 唯一约束冲突翻译为仓储层错误。
// 按约束名区分"重复身份"与"重复 ID"，使上层能够分支提示。
func translateDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case "uq_trainee_identity":
			return ErrDuplicateIdentity
		default:
			return ErrDuplicateUserID
		}
	}
	return err
}

func (r *traineeRepo) Create(ctx context.Context, trainee *model.Trainee) error {
	if err := r.db.WithContext(ctx).Create(trainee).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

func (r *traineeRepo) GetByID(ctx context.Context, id int64) (*model.Trainee, error) {
	var trainee model.Trainee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&trainee).Error
	if err != nil {
		return nil, err
	}
	return &trainee, nil
}

func (r *traineeRepo) GetByUserID(ctx context.Context, userid string) (*model.Trainee, error) {
	var trainee model.Trainee
	err := r.db.WithContext(ctx).
		Where("userid = ?", userid).
		First(&trainee).Error
	if err != nil {
		return nil, err
	}
	return &trainee, nil
}

func (r *traineeRepo) FindByIdentity(ctx context.Context, name, birth, enterDate string) (*model.Trainee, error) {
	var trainee model.Trainee
	err := r.db.WithContext(ctx).
		Where("name = ? AND birth = ? AND enter_date = ?", name, birth, enterDate).
		Order("id").
		First(&trainee).Error
	if err != nil {
		return nil, err
	}
	return &trainee, nil
}

func (r *traineeRepo) ExistsUserID(ctx context.Context, userid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Trainee{}).
		Where("userid = ?", userid).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *traineeRepo) DeleteAll(ctx context.Context) (int64, error) {
	// 信件经外键 ON DELETE CASCADE 一并删除
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Trainee{})
	return result.RowsAffected, result.Error
}
