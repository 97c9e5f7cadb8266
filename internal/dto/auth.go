package dto

// ── 认证模块 DTO ──

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name      string `json:"name"       binding:"required"`
	Birth     string `json:"birth"      binding:"required,len=6"`
	EnterDate string `json:"enter_date" binding:"required"`
	UserID    string `json:"userid"     binding:"required,max=30"`
	Password  string `json:"password"   binding:"required"`
}

// RegisterResponse 注册成功响应
type RegisterResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"` // 失败时由客户端解码使用
}

// LoginRequest 登录请求
type LoginRequest struct {
	UserID   string `json:"userid"   binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录成功响应
// token 为授权改造新增字段：邮箱查询 / 删信 / 登出需携带 Bearer Token
type LoginResponse struct {
	Success   bool   `json:"success"`
	Name      string `json:"name"`
	UserID    string `json:"userid"`
	TraineeID int64  `json:"trainee_id"`
	Token     string `json:"token"`
	Message   string `json:"message,omitempty"` // 失败时由客户端解码使用
}

// CheckIDRequest ID 可用性检查请求
type CheckIDRequest struct {
	UserID string `json:"userid" binding:"required"`
}

// CheckIDResponse ID 可用性检查响应
// success=true 表示可用，success=false 表示已被占用（与原始契约一致，均为 200）
type CheckIDResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
