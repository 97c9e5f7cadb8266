package repository

import "errors"

// 存储层唯一约束冲突的业务化表示。
// 注册采用单条原子 INSERT，以约束冲突作为权威的重复信号。
var (
	// ErrDuplicateUserID userid 已被占用（uq_trainee_userid）
	ErrDuplicateUserID = errors.New("userid 已存在")
	// ErrDuplicateIdentity (name, birth, enter_date) 三元组已注册（uq_trainee_identity）
	ErrDuplicateIdentity = errors.New("同一身份三元组已注册")
)
