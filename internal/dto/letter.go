package dto

// ── 信件模块 DTO ──

// 长度上限以字符（rune）计，与原始表单限制一致。
const (
	MaxTitleLen   = 50
	MaxSenderLen  = 20
	MaxContentLen = 1500
)

// SendLetterRequest 寄信请求
// 字段先去除首尾空白再校验非空与长度，校验在 Service 层完成。
type SendLetterRequest struct {
	TraineeID int64  `json:"trainee_id" binding:"required"`
	Title     string `json:"title"      binding:"required"`
	Sender    string `json:"sender"     binding:"required"`
	Content   string `json:"content"    binding:"required"`
}

// LettersRequest 邮箱列表请求
type LettersRequest struct {
	TraineeID int64 `json:"trainee_id" binding:"required"`
}

// LetterItem 邮箱列表中的单封信件
type LetterItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"` // ISO 8601
}

// LettersResponse 邮箱列表响应（服务端不分页，客户端按 10 封/页切分）
type LettersResponse struct {
	Success bool         `json:"success"`
	Letters []LetterItem `json:"letters"`
	Message string       `json:"message,omitempty"` // 失败时由客户端解码使用
}

// DeleteLetterRequest 删信请求
type DeleteLetterRequest struct {
	LetterID int64 `json:"letter_id" binding:"required"`
}

// ExportLettersRequest 邮箱导出请求
type ExportLettersRequest struct {
	TraineeID int64 `json:"trainee_id" binding:"required"`
}
