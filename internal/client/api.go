package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"inpyeon/backend/internal/dto"
)

// ErrServer 传输层/服务器侧的通用失败。
// 业务性失败（查无此人、重复 ID 等）以服务器下发的 message 为准，
// 与该错误可区分。
var ErrServer = errors.New("서버 오류가 발생했습니다.")

// API 인편 服务的 HTTP API 客户端
// 登录后持有 Token，仅存内存：进程退出即丢失，需重新登录。
type API struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// NewAPI 创建 API 客户端
func NewAPI(baseURL string) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// post 发送 JSON 请求并将响应体解码到 out。
// 服务器无论成功失败都返回 JSON 信封，因此状态码不单独处理；
// 网络/解码失败包装为 ErrServer。
func (a *API) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrServer, err)
	}
	return nil
}

// Register 注册，成功返回新训练兵 ID
func (a *API) Register(ctx context.Context, name, birth, enterDate, userid, password string) (int64, error) {
	req := dto.RegisterRequest{
		Name:      name,
		Birth:     birth,
		EnterDate: enterDate,
		UserID:    userid,
		Password:  password,
	}
	var resp dto.RegisterResponse
	if err := a.post(ctx, "/api/register", req, &resp); err != nil {
		return 0, err
	}
	if !resp.Success {
		return 0, errors.New(resp.Message)
	}
	return resp.ID, nil
}

// Login 登录，成功后在客户端内存中保存 Token
func (a *API) Login(ctx context.Context, userid, password string) (*dto.LoginResponse, error) {
	req := dto.LoginRequest{UserID: userid, Password: password}
	var resp dto.LoginResponse
	if err := a.post(ctx, "/api/login", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.New(resp.Message)
	}
	a.token = resp.Token
	return &resp, nil
}

// CheckID 检查 userid 可用性，返回 (是否可用, 服务器提示语)
func (a *API) CheckID(ctx context.Context, userid string) (bool, string, error) {
	req := dto.CheckIDRequest{UserID: userid}
	var resp dto.CheckIDResponse
	if err := a.post(ctx, "/api/check-id", req, &resp); err != nil {
		return false, "", err
	}
	return resp.Success, resp.Message, nil
}

// SearchTrainee 按三元组查询收信人。
// 查无此人返回 (nil, nil)：业务性"未找到"不作为错误。
func (a *API) SearchTrainee(ctx context.Context, name, birth, enterDate string) (*dto.TraineeInfo, error) {
	req := dto.SearchTraineeRequest{Name: name, Birth: birth, EnterDate: enterDate}
	var resp dto.SearchTraineeResponse
	if err := a.post(ctx, "/api/search-trainee", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, nil
	}
	trainee := resp.Trainee
	return &trainee, nil
}

// SendLetter 寄信
func (a *API) SendLetter(ctx context.Context, traineeID int64, title, sender, content string) error {
	req := dto.SendLetterRequest{
		TraineeID: traineeID,
		Title:     title,
		Sender:    sender,
		Content:   content,
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := a.post(ctx, "/api/send-letter", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return errors.New(resp.Message)
	}
	return nil
}

// Letters 拉取整个邮箱（服务端不分页）
func (a *API) Letters(ctx context.Context, traineeID int64) ([]dto.LetterItem, error) {
	req := dto.LettersRequest{TraineeID: traineeID}
	var resp dto.LettersResponse
	if err := a.post(ctx, "/api/letters", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.New(resp.Message)
	}
	return resp.Letters, nil
}

// DeleteLetter 删除本人信件
func (a *API) DeleteLetter(ctx context.Context, letterID int64) error {
	req := dto.DeleteLetterRequest{LetterID: letterID}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := a.post(ctx, "/api/delete-letter", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return errors.New(resp.Message)
	}
	return nil
}

// Logout 登出并丢弃本地 Token
func (a *API) Logout(ctx context.Context) error {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	err := a.post(ctx, "/api/logout", struct{}{}, &resp)
	a.token = "" // 无论服务端结果如何，本地登录态一律清除
	if err != nil {
		return err
	}
	if !resp.Success {
		return errors.New(resp.Message)
	}
	return nil
}

// LoggedIn 是否持有 Token
func (a *API) LoggedIn() bool { return a.token != "" }
