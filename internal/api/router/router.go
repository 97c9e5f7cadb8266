package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inpyeon/backend/config"
	"inpyeon/backend/internal/api/handler"
	"inpyeon/backend/internal/api/middleware"
	"inpyeon/backend/pkg/jwt"
	"inpyeon/backend/pkg/redis"
)

// maxBodyBytes 请求体上限：信件正文至多 1500 字，64KB 足够
const maxBodyBytes = 64 << 10

// Setup 初始化并返回 Gin 路由引擎
// 每个操作一个端点、统一 POST，与原始 JSON 契约一致
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// 无需认证
		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)
		api.POST("/check-id", h.Auth.CheckID)
		api.POST("/search-trainee", h.Trainee.Search)
		api.POST("/send-letter", h.Letter.Send)

		// 开发/测试用途；无确认、无审计（已知弱点，见日志留痕）
		api.POST("/reset-trainees", h.Trainee.Reset)

		// 需要认证的路由：邮箱查询与删信绑定认证身份
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/letters", h.Letter.List)
			authorized.POST("/delete-letter", h.Letter.Delete)
			authorized.POST("/export-letters", h.Export.ExportLetters)
			authorized.POST("/logout", h.Auth.Logout)
		}
	}

	return r
}
