package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"inpyeon/backend/pkg/jwt"
	"inpyeon/backend/pkg/redis"
	"inpyeon/backend/pkg/response"
)

// 上下文键：由 JWTAuth 注入，handler 经 context_helper 读取
const (
	CtxTraineeID = "trainee_id"
	CtxName      = "name"
	CtxTokenJTI  = "token_jti"
	CtxTokenExp  = "token_exp"
)

// JWTAuth JWT 认证中间件
// 从 Authorization: Bearer <token> 中提取并验证 Access Token。
// rdb 非 nil 时检查登出黑名单；Redis 故障按未拉黑放行。
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "로그인이 필요합니다.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "로그인이 필요합니다.")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "로그인이 만료되었습니다. 다시 로그인해주세요.")
			c.Abort()
			return
		}

		// 登出黑名单
		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, "로그인이 만료되었습니다. 다시 로그인해주세요.")
				c.Abort()
				return
			}
		}

		// 将认证身份注入上下文
		c.Set(CtxTraineeID, claims.TraineeID)
		c.Set(CtxName, claims.Name)
		c.Set(CtxTokenJTI, claims.ID)
		c.Set(CtxTokenExp, claims.ExpiresAt.Time)

		c.Next()
	}
}
