package model

import "time"

// Letter 信件表 — 对应 letter
//
// created_at 由服务端时钟在写入时赋值，JSON 序列化为 ISO 8601（RFC 3339）。
type Letter struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"                json:"id"`
	TraineeID int64     `gorm:"column:trainee_id;not null;index:idx_letter_trainee_created,priority:1" json:"-"`
	Title     string    `gorm:"type:varchar(50);not null"               json:"title"`
	Sender    string    `gorm:"type:varchar(20);not null"               json:"sender"`
	Content   string    `gorm:"type:text;not null"                      json:"content"`
	CreatedAt time.Time `gorm:"not null;index:idx_letter_trainee_created,priority:2,sort:desc" json:"created_at"`
}

// TableName 指定表名
func (Letter) TableName() string { return "letter" }
