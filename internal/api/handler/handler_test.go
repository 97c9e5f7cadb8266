package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"inpyeon/backend/config"
	"inpyeon/backend/internal/api/middleware"
	"inpyeon/backend/internal/dto"
	"inpyeon/backend/internal/service"
	"inpyeon/backend/pkg/jwt"
)

// ── 函数字段式 Service 桩 ──

type stubAuthService struct {
	registerFn func(ctx context.Context, req *dto.RegisterRequest) (int64, error)
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	checkIDFn  func(ctx context.Context, userid string) (bool, error)
	logoutFn   func(ctx context.Context, jti string, expiresAt time.Time) error
}

func (s *stubAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	return s.registerFn(ctx, req)
}
func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginFn(ctx, req)
}
func (s *stubAuthService) CheckID(ctx context.Context, userid string) (bool, error) {
	return s.checkIDFn(ctx, userid)
}
func (s *stubAuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, jti, expiresAt)
}

type stubTraineeService struct {
	searchFn func(ctx context.Context, req *dto.SearchTraineeRequest) (*dto.TraineeInfo, error)
	resetFn  func(ctx context.Context) (int64, error)
}

func (s *stubTraineeService) Search(ctx context.Context, req *dto.SearchTraineeRequest) (*dto.TraineeInfo, error) {
	return s.searchFn(ctx, req)
}
func (s *stubTraineeService) ResetAll(ctx context.Context) (int64, error) {
	return s.resetFn(ctx)
}

type stubLetterService struct {
	sendFn   func(ctx context.Context, req *dto.SendLetterRequest) error
	listFn   func(ctx context.Context, traineeID int64) ([]dto.LetterItem, error)
	deleteFn func(ctx context.Context, letterID, requesterID int64) error
}

func (s *stubLetterService) Send(ctx context.Context, req *dto.SendLetterRequest) error {
	return s.sendFn(ctx, req)
}
func (s *stubLetterService) List(ctx context.Context, traineeID int64) ([]dto.LetterItem, error) {
	return s.listFn(ctx, traineeID)
}
func (s *stubLetterService) Delete(ctx context.Context, letterID, requesterID int64) error {
	return s.deleteFn(ctx, letterID, requesterID)
}

type stubExportService struct {
	exportFn func(ctx context.Context, traineeID int64) (*bytes.Buffer, string, error)
}

func (s *stubExportService) ExportMailbox(ctx context.Context, traineeID int64) (*bytes.Buffer, string, error) {
	return s.exportFn(ctx, traineeID)
}

// ── 测试路由装配 ──

var testJWTManager = jwt.NewManager(&config.AuthConfig{
	JWTSecret:      "test-secret-0123456789abcdef",
	AccessTokenTTL: time.Hour,
})

// newTestRouter 以与生产路由相同的分组规则装配测试引擎
func newTestRouter(auth service.AuthService, trainee service.TraineeService, letter service.LetterService, export service.ExportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := &Handler{
		Auth:    NewAuthHandler(auth),
		Trainee: NewTraineeHandler(trainee),
		Letter:  NewLetterHandler(letter),
		Export:  NewExportHandler(export),
	}

	api := r.Group("/api")
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)
	api.POST("/check-id", h.Auth.CheckID)
	api.POST("/search-trainee", h.Trainee.Search)
	api.POST("/send-letter", h.Letter.Send)
	api.POST("/reset-trainees", h.Trainee.Reset)

	authorized := api.Group("")
	authorized.Use(middleware.JWTAuth(testJWTManager, nil))
	authorized.POST("/letters", h.Letter.List)
	authorized.POST("/delete-letter", h.Letter.Delete)
	authorized.POST("/export-letters", h.Export.ExportLetters)
	authorized.POST("/logout", h.Auth.Logout)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("请求体序列化失败: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("响应体解析失败: %v (body=%s)", err, w.Body.String())
	}
	return m
}

// ── 认证端点 ──

func TestRegisterEndpoint(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(_ context.Context, _ *dto.RegisterRequest) (int64, error) {
			return 42, nil
		},
	}
	r := newTestRouter(auth, nil, nil, nil)

	w := doJSON(t, r, "/api/register", dto.RegisterRequest{
		Name: "김철수", Birth: "040315", EnterDate: "2026-08-01",
		UserID: "chulsoo04", Password: "pw",
	}, "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("success 应为 true: %v", body)
	}
	if body["id"] != float64(42) {
		t.Fatalf("id = %v, want 42", body["id"])
	}
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(_ context.Context, _ *dto.RegisterRequest) (int64, error) {
			return 0, service.ErrDuplicatePerson
		},
	}
	r := newTestRouter(auth, nil, nil, nil)

	w := doJSON(t, r, "/api/register", dto.RegisterRequest{
		Name: "김철수", Birth: "040315", EnterDate: "2026-08-01",
		UserID: "chulsoo04", Password: "pw",
	}, "")

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false || body["message"] != service.ErrDuplicatePerson.Error() {
		t.Fatalf("重复注册响应不符: %v", body)
	}
}

func TestRegisterEndpointBadBody(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, nil, nil, nil)

	// birth 必须为 6 位
	w := doJSON(t, r, "/api/register", map[string]string{
		"name": "김철수", "birth": "20040315", "enter_date": "2026-08-01",
		"userid": "chulsoo04", "password": "pw",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}
	r := newTestRouter(auth, nil, nil, nil)

	w := doJSON(t, r, "/api/login", dto.LoginRequest{UserID: "x", Password: "y"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestCheckIDEndpoint(t *testing.T) {
	auth := &stubAuthService{
		checkIDFn: func(_ context.Context, userid string) (bool, error) {
			return userid == "fresh", nil
		},
	}
	r := newTestRouter(auth, nil, nil, nil)

	w := doJSON(t, r, "/api/check-id", dto.CheckIDRequest{UserID: "fresh"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decodeBody(t, w); body["success"] != true {
		t.Fatalf("可用 ID 应返回 success=true: %v", body)
	}

	// 已占用：同为 200，以 success=false 区分
	w = doJSON(t, r, "/api/check-id", dto.CheckIDRequest{UserID: "taken"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decodeBody(t, w); body["success"] != false {
		t.Fatalf("占用 ID 应返回 success=false: %v", body)
	}
}

// ── 收信人查询 ──

func TestSearchTraineeEndpointNotFound(t *testing.T) {
	trainee := &stubTraineeService{
		searchFn: func(_ context.Context, _ *dto.SearchTraineeRequest) (*dto.TraineeInfo, error) {
			return nil, service.ErrTraineeNotFound
		},
	}
	r := newTestRouter(nil, trainee, nil, nil)

	w := doJSON(t, r, "/api/search-trainee", dto.SearchTraineeRequest{
		Name: "김철수", Birth: "040315", EnterDate: "2026-08-01",
	}, "")

	// 业务性"查无此人"是 200 + success=false，不是 404
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Fatalf("查无此人应 success=false: %v", body)
	}
}

func TestSearchTraineeEndpoint(t *testing.T) {
	trainee := &stubTraineeService{
		searchFn: func(_ context.Context, req *dto.SearchTraineeRequest) (*dto.TraineeInfo, error) {
			return &dto.TraineeInfo{ID: 7, Name: req.Name, Birth: req.Birth, EnterDate: req.EnterDate}, nil
		},
	}
	r := newTestRouter(nil, trainee, nil, nil)

	w := doJSON(t, r, "/api/search-trainee", dto.SearchTraineeRequest{
		Name: "김철수", Birth: "040315", EnterDate: "2026-08-01",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp dto.SearchTraineeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if !resp.Success || resp.Trainee.ID != 7 {
		t.Fatalf("查询响应不符: %+v", resp)
	}
}

// ── 寄信 ──

func TestSendLetterEndpointValidation(t *testing.T) {
	letter := &stubLetterService{
		sendFn: func(_ context.Context, _ *dto.SendLetterRequest) error {
			return service.ErrTitleTooLong
		},
	}
	r := newTestRouter(nil, nil, letter, nil)

	w := doJSON(t, r, "/api/send-letter", dto.SendLetterRequest{
		TraineeID: 1, Title: "t", Sender: "s", Content: "c",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["message"] != service.ErrTitleTooLong.Error() {
		t.Fatalf("校验错误消息不符: %v", body)
	}
}

// ── 授权绑定 ──

func TestLettersEndpointRequiresToken(t *testing.T) {
	r := newTestRouter(nil, nil, &stubLetterService{}, nil)

	w := doJSON(t, r, "/api/letters", dto.LettersRequest{TraineeID: 1}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLettersEndpointMailboxOwnership(t *testing.T) {
	letter := &stubLetterService{
		listFn: func(_ context.Context, traineeID int64) ([]dto.LetterItem, error) {
			return []dto.LetterItem{{ID: 1, Title: "편지", Sender: "엄마"}}, nil
		},
	}
	r := newTestRouter(nil, nil, letter, nil)

	token, err := testJWTManager.GenerateToken(7, "김철수")
	if err != nil {
		t.Fatalf("签发测试 Token 失败: %v", err)
	}

	// 请求他人邮箱 → 403
	w := doJSON(t, r, "/api/letters", dto.LettersRequest{TraineeID: 99}, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	// 本人邮箱 → 200
	w = doJSON(t, r, "/api/letters", dto.LettersRequest{TraineeID: 7}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", w.Code, w.Body.String())
	}
	var resp dto.LettersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if !resp.Success || len(resp.Letters) != 1 {
		t.Fatalf("邮箱列表响应不符: %+v", resp)
	}
}

func TestLettersEndpointExpiredToken(t *testing.T) {
	r := newTestRouter(nil, nil, &stubLetterService{}, nil)

	expired := jwt.NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-0123456789abcdef",
		AccessTokenTTL: -time.Minute,
	})
	token, err := expired.GenerateToken(7, "김철수")
	if err != nil {
		t.Fatalf("签发测试 Token 失败: %v", err)
	}

	w := doJSON(t, r, "/api/letters", dto.LettersRequest{TraineeID: 7}, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestDeleteLetterEndpoint(t *testing.T) {
	letter := &stubLetterService{
		deleteFn: func(_ context.Context, letterID, requesterID int64) error {
			switch letterID {
			case 1:
				return nil
			case 2:
				return service.ErrLetterNotOwned
			default:
				return service.ErrLetterNotFound
			}
		},
	}
	r := newTestRouter(nil, nil, letter, nil)

	token, err := testJWTManager.GenerateToken(7, "김철수")
	if err != nil {
		t.Fatalf("签发测试 Token 失败: %v", err)
	}

	cases := []struct {
		letterID int64
		want     int
	}{
		{1, http.StatusOK},
		{2, http.StatusForbidden},
		{3, http.StatusNotFound},
	}
	for _, tc := range cases {
		w := doJSON(t, r, "/api/delete-letter", dto.DeleteLetterRequest{LetterID: tc.letterID}, token)
		if w.Code != tc.want {
			t.Fatalf("letter_id=%d: status = %d, want %d", tc.letterID, w.Code, tc.want)
		}
	}
}

// ── 导出 ──

func TestExportLettersEndpoint(t *testing.T) {
	export := &stubExportService{
		exportFn: func(_ context.Context, traineeID int64) (*bytes.Buffer, string, error) {
			return bytes.NewBufferString("xlsx-bytes"), "메일함_김철수_20260901.xlsx", nil
		},
	}
	r := newTestRouter(nil, nil, nil, export)

	token, err := testJWTManager.GenerateToken(7, "김철수")
	if err != nil {
		t.Fatalf("签发测试 Token 失败: %v", err)
	}

	w := doJSON(t, r, "/api/export-letters", dto.ExportLettersRequest{TraineeID: 7}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Fatalf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Fatal("缺少 Content-Disposition 响应头")
	}
	if w.Body.String() != "xlsx-bytes" {
		t.Fatal("响应体应为导出的文件内容")
	}
}

func TestExportLettersEndpointOwnership(t *testing.T) {
	r := newTestRouter(nil, nil, nil, &stubExportService{})

	token, err := testJWTManager.GenerateToken(7, "김철수")
	if err != nil {
		t.Fatalf("签发测试 Token 失败: %v", err)
	}

	w := doJSON(t, r, "/api/export-letters", dto.ExportLettersRequest{TraineeID: 99}, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

// ── 登出 ──

func TestLogoutEndpoint(t *testing.T) {
	var gotJTI string
	auth := &stubAuthService{
		logoutFn: func(_ context.Context, jti string, _ time.Time) error {
			gotJTI = jti
			return nil
		},
	}
	r := newTestRouter(auth, nil, nil, nil)

	token, err := testJWTManager.GenerateToken(7, "김철수")
	if err != nil {
		t.Fatalf("签发测试 Token 失败: %v", err)
	}

	w := doJSON(t, r, "/api/logout", struct{}{}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", w.Code, w.Body.String())
	}
	if gotJTI == "" {
		t.Fatal("登出应传递 Token 的 jti")
	}
}
