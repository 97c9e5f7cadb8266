package model

import "time"

// Trainee 训练兵表 — 对应 trainee
//
// userid 全局唯一；(name, birth, enter_date) 三元组同样由存储层唯一约束保证，
// 注册时的重复判定以约束冲突为准，不依赖先查后插。
// birth 为 6 位原始字符串，不做日历校验。
type Trainee struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"                                      json:"id"`
	Name         string    `gorm:"type:text;not null;uniqueIndex:uq_trainee_identity,priority:1" json:"name"`
	Birth        string    `gorm:"type:text;not null;uniqueIndex:uq_trainee_identity,priority:2" json:"birth"`
	EnterDate    string    `gorm:"column:enter_date;type:text;not null;uniqueIndex:uq_trainee_identity,priority:3" json:"enter_date"`
	UserID       string    `gorm:"column:userid;type:text;not null;uniqueIndex:uq_trainee_userid" json:"userid"`
	PasswordHash string    `gorm:"type:text;not null"                                            json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                            json:"created_at"`

	// 关联（删除训练兵时级联删除其全部信件）
	Letters []Letter `gorm:"foreignKey:TraineeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Trainee) TableName() string { return "trainee" }
