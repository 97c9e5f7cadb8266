package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Trainee TraineeRepository
	Letter  LetterRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Trainee: NewTraineeRepo(db),
		Letter:  NewLetterRepo(db),
	}
}
